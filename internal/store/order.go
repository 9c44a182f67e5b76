package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tailor-backend/internal/models"
)

// Appointment lengths created by slot selection.
const (
	fitOnDurationMin        = 45
	consultationDurationMin = 30
)

func orderFromRequest(req *models.CreateOrderRequest) (*models.Order, error) {
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: client_id is required", ErrValidation)
	}
	if req.GarmentType == "" {
		return nil, fmt.Errorf("%w: garment_type is required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.PaidAmount < 0 {
		return nil, fmt.Errorf("%w: paid_amount cannot be negative", ErrValidation)
	}

	return &models.Order{
		InquiryID:      req.InquiryID,
		ClientID:       req.ClientID,
		GarmentType:    req.GarmentType,
		Fabric:         req.Fabric,
		Price:          req.Price,
		PaidAmount:     req.PaidAmount,
		Status:         models.OrderNew,
		DueDate:        req.DueDate,
		TailorAssigned: req.TailorAssigned,
		Measurements:   copyMeasurements(req.Measurements),
		Notes:          req.Notes,
	}, nil
}

// CreateOrder opens a production job for an existing client and bumps the
// client's order counter.
func (s *Store) CreateOrder(req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := orderFromRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.createOrderLocked(order); err != nil {
		return nil, err
	}
	return cloneOrder(order), nil
}

func (s *Store) createOrderLocked(o *models.Order) error {
	c, ok := s.clients[o.ClientID]
	if !ok {
		return fmt.Errorf("%w: client %s", ErrNotFound, o.ClientID)
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if _, exists := s.orders[o.ID]; exists {
		return fmt.Errorf("%w: order %s already exists", ErrValidation, o.ID)
	}

	o.ClientName = c.Name
	now := s.now()
	o.CreatedAt = now
	o.UpdatedAt = now

	s.orders[o.ID] = cloneOrder(o)
	s.orderIDs = append(s.orderIDs, o.ID)
	c.TotalOrders++
	return nil
}

// SeedOrder installs an order already partway through production. Unlike
// CreateOrder it keeps the given status and does not bump the client's order
// counter; fixture loading only.
func (s *Store) SeedOrder(o *models.Order) error {
	if !o.Status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, o.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[o.ClientID]
	if !ok {
		return fmt.Errorf("%w: client %s", ErrNotFound, o.ClientID)
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if _, exists := s.orders[o.ID]; exists {
		return fmt.Errorf("%w: order %s already exists", ErrValidation, o.ID)
	}

	o.ClientName = c.Name
	now := s.now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}

	s.orders[o.ID] = cloneOrder(o)
	s.orderIDs = append(s.orderIDs, o.ID)
	return nil
}

func (s *Store) GetOrder(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return cloneOrder(o), nil
}

// ListOrders returns all orders in insertion order.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, *cloneOrder(s.orders[id]))
	}
	return out
}

// ListOrdersByClient returns a client's orders in insertion order.
func (s *Store) ListOrdersByClient(clientID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, id := range s.orderIDs {
		if s.orders[id].ClientID == clientID {
			out = append(out, *cloneOrder(s.orders[id]))
		}
	}
	return out
}

// UpdateOrderDetails applies staff edits. Only non-nil fields change.
func (s *Store) UpdateOrderDetails(id string, req *models.UpdateOrderRequest) (*models.Order, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.PaidAmount != nil && *req.PaidAmount < 0 {
		return nil, fmt.Errorf("%w: paid_amount cannot be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}

	if req.Fabric != nil {
		o.Fabric = *req.Fabric
	}
	if req.Price != nil {
		o.Price = *req.Price
	}
	if req.PaidAmount != nil {
		o.PaidAmount = *req.PaidAmount
	}
	if req.DueDate != nil {
		o.DueDate = *req.DueDate
	}
	if req.NextFitOnDate != nil {
		o.NextFitOnDate = copyTime(req.NextFitOnDate)
	}
	if req.TailorAssigned != nil {
		o.TailorAssigned = *req.TailorAssigned
	}
	if req.Measurements != nil {
		o.Measurements = copyMeasurements(req.Measurements)
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
	o.UpdatedAt = s.now()

	return cloneOrder(o), nil
}

// AdvanceOrderStatus moves an order exactly one stage forward in the
// production chain. Skips and regressions are rejected, as is any move while
// a change request is open (an open change request pauses production).
// Reaching Delivered credits the order's price to the client's LTV.
func (s *Store) AdvanceOrderStatus(id string, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if next.Index() != o.Status.Index()+1 {
		return nil, fmt.Errorf("%w: order %s cannot move %s -> %s", ErrInvalidTransition, id, o.Status, next)
	}
	if o.ChangeRequestStatus.Open() {
		return nil, fmt.Errorf("%w: order %s has an open change request", ErrInvalidState, id)
	}

	o.Status = next
	o.UpdatedAt = s.now()

	if next == models.OrderDelivered {
		if c, ok := s.clients[o.ClientID]; ok {
			c.LTV += o.Price
		}
	}

	return cloneOrder(o), nil
}

// RequestChange opens the change-request overlay. The original flow enters
// directly at Reviewing, skipping Pending.
func (s *Store) RequestChange(id, reason string) (*models.Order, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if o.Status == models.OrderNew {
		return nil, fmt.Errorf("%w: order %s is not in production yet", ErrInvalidState, id)
	}
	if o.ChangeRequestStatus.Open() {
		return nil, fmt.Errorf("%w: order %s already has an open change request", ErrInvalidState, id)
	}

	o.ChangeRequest = reason
	o.ChangeRequestStatus = models.ChangeReviewing
	o.AppointmentSuggestedSlots = nil
	o.AppointmentSelectedSlot = nil
	o.UpdatedAt = s.now()
	return cloneOrder(o), nil
}

// ProposeChangeSlots records the shop's candidate discussion slots, in the
// order they were offered.
func (s *Store) ProposeChangeSlots(id string, slots []time.Time) (*models.Order, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if o.ChangeRequestStatus != models.ChangeReviewing {
		return nil, fmt.Errorf("%w: order %s change request is not under review", ErrInvalidState, id)
	}

	o.AppointmentSuggestedSlots = copySlots(slots)
	o.UpdatedAt = s.now()
	return cloneOrder(o), nil
}

// SelectChangeSlot confirms one of the proposed slots, schedules the
// discussion appointment and marks the overlay Scheduled.
func (s *Store) SelectChangeSlot(id string, slot time.Time) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if o.ChangeRequestStatus != models.ChangeReviewing {
		return nil, fmt.Errorf("%w: order %s change request is not under review", ErrInvalidState, id)
	}
	if !slotOffered(o.AppointmentSuggestedSlots, slot) {
		return nil, fmt.Errorf("%w: slot %s was not offered", ErrInvalidState, slot.Format(time.RFC3339))
	}

	o.AppointmentSelectedSlot = &slot
	o.ChangeRequestStatus = models.ChangeScheduled
	o.UpdatedAt = s.now()

	s.createAppointmentLocked(&models.Appointment{
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		OrderID:     o.ID,
		Type:        models.ApptConsultation,
		Date:        slot,
		DurationMin: consultationDurationMin,
		Status:      models.ApptScheduled,
	})

	return cloneOrder(o), nil
}

// ResolveChange closes the overlay and returns the order to an unobstructed
// state at its current production stage. All changeRequest* fields go back to
// their pre-request null state.
func (s *Store) ResolveChange(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if o.ChangeRequestStatus != models.ChangeScheduled {
		return nil, fmt.Errorf("%w: order %s change request is not scheduled", ErrInvalidState, id)
	}

	o.ChangeRequest = ""
	o.ChangeRequestStatus = models.ChangeNone
	o.AppointmentSuggestedSlots = nil
	o.AppointmentSelectedSlot = nil
	o.UpdatedAt = s.now()
	return cloneOrder(o), nil
}

// ProposeFitSlots offers fitting times. Legal only during the fitting stages
// and only while no slot has been picked yet.
func (s *Store) ProposeFitSlots(id string, slots []time.Time) (*models.Order, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if o.Status != models.OrderFirstFit && o.Status != models.OrderAdjustments {
		return nil, fmt.Errorf("%w: order %s is not in a fitting stage", ErrInvalidState, id)
	}
	if o.SelectedFitSlot != nil {
		return nil, fmt.Errorf("%w: order %s already has a confirmed fit slot", ErrInvalidState, id)
	}

	o.SuggestedFitSlots = copySlots(slots)
	o.UpdatedAt = s.now()
	return cloneOrder(o), nil
}

// SelectFitSlot confirms a fitting time from the offered set and books the
// Fit-On appointment. The offered set is retained as history.
func (s *Store) SelectFitSlot(id string, slot time.Time) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if !slotOffered(o.SuggestedFitSlots, slot) {
		return nil, fmt.Errorf("%w: slot %s was not offered", ErrInvalidState, slot.Format(time.RFC3339))
	}
	if o.SelectedFitSlot != nil {
		return nil, fmt.Errorf("%w: order %s already has a confirmed fit slot", ErrInvalidState, id)
	}

	o.SelectedFitSlot = &slot
	o.NextFitOnDate = &slot
	o.UpdatedAt = s.now()

	s.createAppointmentLocked(&models.Appointment{
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		OrderID:     o.ID,
		Type:        models.ApptFitOn,
		Date:        slot,
		DurationMin: fitOnDurationMin,
		Status:      models.ApptScheduled,
	})

	return cloneOrder(o), nil
}

// RateOrder records a write-once 1-5 rating once the garment is Ready or
// Delivered.
func (s *Store) RateOrder(id string, rating int, feedback string) (*models.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if o.Status != models.OrderReady && o.Status != models.OrderDelivered {
		return nil, fmt.Errorf("%w: order %s is not ready for rating", ErrInvalidState, id)
	}
	if o.Rating != 0 {
		return nil, fmt.Errorf("%w: order %s is already rated", ErrInvalidState, id)
	}

	o.Rating = rating
	o.Feedback = feedback
	o.UpdatedAt = s.now()
	return cloneOrder(o), nil
}

func slotOffered(offered []time.Time, slot time.Time) bool {
	for _, s := range offered {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
