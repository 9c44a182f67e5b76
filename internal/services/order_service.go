package services

import (
	"context"
	"time"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/events"
	"tailor-backend/internal/insight"
	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/store"
)

type OrderService struct {
	Store         *store.Store
	Hub           *events.Hub
	Insight       *insight.Gateway
	Notifications *NotificationService
}

func NewOrderService(s *store.Store, hub *events.Hub, gw *insight.Gateway, notifications *NotificationService) *OrderService {
	return &OrderService{Store: s, Hub: hub, Insight: gw, Notifications: notifications}
}

func (s *OrderService) publish(id, action string) {
	metrics.StoreMutationsTotal.WithLabelValues("order", action).Inc()
	s.Hub.Publish("order", id, action)
}

// notifyClient looks up the order's client and runs fn. Missing clients are
// tolerated: notification is best-effort.
func (s *OrderService) notifyClient(order *models.Order, fn func(*models.Client, *models.Order)) {
	client, err := s.Store.GetClient(order.ClientID)
	if err != nil {
		return
	}
	fn(client, order)
}

func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := s.Store.CreateOrder(req)
	if err != nil {
		return nil, err
	}

	s.publish(order.ID, "created")
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Store.GetOrder(id)
}

func (s *OrderService) ListOrders(ctx context.Context) []models.Order {
	return s.Store.ListOrders()
}

func (s *OrderService) ListOrdersByClient(ctx context.Context, clientID string) []models.Order {
	return s.Store.ListOrdersByClient(clientID)
}

func (s *OrderService) UpdateOrderDetails(ctx context.Context, id string, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Store.UpdateOrderDetails(id, req)
	if err != nil {
		return nil, err
	}

	// Job card changed; a cached suggestion for it is stale.
	cache.InvalidateInsight(ctx, string(models.InsightJobAdjustment), id)
	s.publish(id, "updated")
	return order, nil
}

func (s *OrderService) AdvanceOrderStatus(ctx context.Context, id string, next models.OrderStatus) (*models.Order, error) {
	order, err := s.Store.AdvanceOrderStatus(id, next)
	if err != nil {
		return nil, err
	}

	s.publish(id, "advanced")
	s.notifyClient(order, s.Notifications.OrderAdvanced)
	return order, nil
}

func (s *OrderService) RequestChange(ctx context.Context, id, reason string) (*models.Order, error) {
	order, err := s.Store.RequestChange(id, reason)
	if err != nil {
		return nil, err
	}

	s.publish(id, "change_requested")
	return order, nil
}

func (s *OrderService) ProposeChangeSlots(ctx context.Context, id string, slots []time.Time) (*models.Order, error) {
	order, err := s.Store.ProposeChangeSlots(id, slots)
	if err != nil {
		return nil, err
	}

	s.publish(id, "change_slots_proposed")
	return order, nil
}

func (s *OrderService) SelectChangeSlot(ctx context.Context, id string, slot time.Time) (*models.Order, error) {
	order, err := s.Store.SelectChangeSlot(id, slot)
	if err != nil {
		return nil, err
	}

	s.publish(id, "change_slot_selected")
	s.Hub.Publish("appointment", order.ID, "created")
	s.notifyClient(order, s.Notifications.ChangeSlotConfirmed)
	return order, nil
}

func (s *OrderService) ResolveChange(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.Store.ResolveChange(id)
	if err != nil {
		return nil, err
	}

	s.publish(id, "change_resolved")
	return order, nil
}

func (s *OrderService) ProposeFitSlots(ctx context.Context, id string, slots []time.Time) (*models.Order, error) {
	order, err := s.Store.ProposeFitSlots(id, slots)
	if err != nil {
		return nil, err
	}

	s.publish(id, "fit_slots_proposed")
	return order, nil
}

func (s *OrderService) SelectFitSlot(ctx context.Context, id string, slot time.Time) (*models.Order, error) {
	order, err := s.Store.SelectFitSlot(id, slot)
	if err != nil {
		return nil, err
	}

	s.publish(id, "fit_slot_selected")
	s.Hub.Publish("appointment", order.ID, "created")
	s.notifyClient(order, s.Notifications.FitSlotConfirmed)
	return order, nil
}

func (s *OrderService) RateOrder(ctx context.Context, id string, rating int, feedback string) (*models.Order, error) {
	order, err := s.Store.RateOrder(id, rating, feedback)
	if err != nil {
		return nil, err
	}

	s.publish(id, "rated")
	return order, nil
}

// SuggestAdjustments runs the job-card review for an order. Unavailable on
// any model failure, never an error to the view.
func (s *OrderService) SuggestAdjustments(ctx context.Context, id string) (*models.InsightResult, error) {
	order, err := s.Store.GetOrder(id)
	if err != nil {
		return nil, err
	}

	result := s.Insight.SuggestJobAdjustments(ctx, *order)
	metrics.InsightRequestsTotal.WithLabelValues(string(result.Kind), outcomeLabel(result.Available)).Inc()
	return &result, nil
}
