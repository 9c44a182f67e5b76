package services

import (
	"context"
	"time"

	"tailor-backend/internal/derive"
	"tailor-backend/internal/insight"
	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/store"
	"tailor-backend/internal/timeutil"
)

// ViewService serves every read-only aggregate. Each call takes fresh store
// snapshots and recomputes; nothing is cached at this scale.
type ViewService struct {
	Store   *store.Store
	Insight *insight.Gateway
}

func NewViewService(s *store.Store, gw *insight.Gateway) *ViewService {
	return &ViewService{Store: s, Insight: gw}
}

func (s *ViewService) Dashboard(ctx context.Context) models.DashboardCounters {
	return derive.DashboardCounters(
		s.Store.ListOrders(),
		s.Store.ListInquiries(),
		s.Store.ListAppointments(),
		timeutil.Now(),
	)
}

func (s *ViewService) Board(ctx context.Context) []models.BoardColumn {
	return derive.BoardColumns(s.Store.ListOrders())
}

func (s *ViewService) CalendarDay(ctx context.Context, year int, month time.Month, day int) []models.Appointment {
	return derive.CalendarDay(s.Store.ListAppointments(), year, month, day)
}

func (s *ViewService) ClientHistory(ctx context.Context, clientID string) ([]models.ClientOrderHistory, error) {
	// Surface NotFound for unknown clients instead of an empty history.
	if _, err := s.Store.GetClient(clientID); err != nil {
		return nil, err
	}
	return derive.ClientHistory(s.Store.ListOrders(), clientID), nil
}

// BusinessReport runs the executive-summary insight over current counters.
func (s *ViewService) BusinessReport(ctx context.Context) models.InsightResult {
	orders := s.Store.ListOrders()
	counters := derive.DashboardCounters(orders, s.Store.ListInquiries(), s.Store.ListAppointments(), timeutil.Now())

	// Most frequent fabric across all jobs; ties go to whichever was seen
	// first.
	counts := make(map[string]int)
	topFabric := ""
	for _, o := range orders {
		if o.Fabric == "" {
			continue
		}
		counts[o.Fabric]++
		if counts[o.Fabric] > counts[topFabric] {
			topFabric = o.Fabric
		}
	}

	result := s.Insight.BusinessReport(ctx, counters, topFabric)
	metrics.InsightRequestsTotal.WithLabelValues(string(result.Kind), outcomeLabel(result.Available)).Inc()
	return result
}
