package services

import (
	"context"

	"tailor-backend/internal/events"
	"tailor-backend/internal/insight"
	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/store"
)

type InquiryService struct {
	Store   *store.Store
	Hub     *events.Hub
	Insight *insight.Gateway
}

func NewInquiryService(s *store.Store, hub *events.Hub, gw *insight.Gateway) *InquiryService {
	return &InquiryService{Store: s, Hub: hub, Insight: gw}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, req *models.CreateInquiryRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		Source:        req.Source,
		Type:          req.Type,
		InterestLevel: req.InterestLevel,
		Message:       req.Message,
	}

	if err := s.Store.CreateInquiry(inquiry); err != nil {
		return nil, err
	}

	metrics.StoreMutationsTotal.WithLabelValues("inquiry", "created").Inc()
	s.Hub.Publish("inquiry", inquiry.ID, "created")
	return inquiry, nil
}

func (s *InquiryService) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	return s.Store.GetInquiry(id)
}

func (s *InquiryService) ListInquiries(ctx context.Context) []models.Inquiry {
	return s.Store.ListInquiries()
}

func (s *InquiryService) AdvanceInquiry(ctx context.Context, id string, next models.InquiryStatus) (*models.Inquiry, error) {
	inquiry, err := s.Store.AdvanceInquiry(id, next)
	if err != nil {
		return nil, err
	}

	metrics.StoreMutationsTotal.WithLabelValues("inquiry", "advanced").Inc()
	s.Hub.Publish("inquiry", id, "advanced")
	return inquiry, nil
}

// ConvertInquiry turns an inquiry into a production order, atomically.
func (s *InquiryService) ConvertInquiry(ctx context.Context, id string, req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := s.Store.ConvertInquiry(id, req)
	if err != nil {
		return nil, err
	}

	metrics.StoreMutationsTotal.WithLabelValues("inquiry", "converted").Inc()
	metrics.StoreMutationsTotal.WithLabelValues("order", "created").Inc()
	s.Hub.Publish("inquiry", id, "converted")
	s.Hub.Publish("order", order.ID, "created")
	return order, nil
}

// Analyze runs the sales-psychology analysis for an inquiry. Never returns a
// transport error: a failed model call comes back as an unavailable result.
func (s *InquiryService) Analyze(ctx context.Context, id string) (*models.InsightResult, error) {
	inquiry, err := s.Store.GetInquiry(id)
	if err != nil {
		return nil, err
	}

	// History is optional; unknown callers are analyzed as new clients.
	var history *models.Client
	if inquiry.ClientID != "" {
		if c, err := s.Store.GetClient(inquiry.ClientID); err == nil {
			history = c
		}
	}

	result := s.Insight.AnalyzeInquiry(ctx, *inquiry, history)
	metrics.InsightRequestsTotal.WithLabelValues(string(result.Kind), outcomeLabel(result.Available)).Inc()
	return &result, nil
}

func outcomeLabel(available bool) string {
	if available {
		return "ok"
	}
	return "unavailable"
}
