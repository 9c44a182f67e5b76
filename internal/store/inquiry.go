package store

import (
	"fmt"

	"github.com/google/uuid"

	"tailor-backend/internal/models"
)

// inquiryEdges is the permitted transition set. New may go straight to a
// terminal state (walk-ins convert or vanish without a contact step);
// Converted and Lost accept nothing.
var inquiryEdges = map[models.InquiryStatus][]models.InquiryStatus{
	models.InquiryNew:       {models.InquiryContacted, models.InquiryConverted, models.InquiryLost},
	models.InquiryContacted: {models.InquiryConverted, models.InquiryLost},
}

func inquiryEdgeAllowed(from, to models.InquiryStatus) bool {
	for _, next := range inquiryEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateInquiry logs an inbound contact. ClientID may be empty (unknown
// caller); when it resolves to a known client the denormalized name is taken
// from the client record.
func (s *Store) CreateInquiry(i *models.Inquiry) error {
	if i.Message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if !i.Source.Valid() {
		return fmt.Errorf("%w: unknown source %q", ErrValidation, i.Source)
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: unknown inquiry type %q", ErrValidation, i.Type)
	}
	if i.InterestLevel == "" {
		i.InterestLevel = models.InterestWarm
	}
	if !i.InterestLevel.Valid() {
		return fmt.Errorf("%w: unknown interest level %q", ErrValidation, i.InterestLevel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if _, exists := s.inquiries[i.ID]; exists {
		return fmt.Errorf("%w: inquiry %s already exists", ErrValidation, i.ID)
	}
	if c, ok := s.clients[i.ClientID]; ok {
		i.ClientName = c.Name
	}
	if i.ClientName == "" {
		return fmt.Errorf("%w: client name is required for unknown clients", ErrValidation)
	}

	if i.Status == "" {
		i.Status = models.InquiryNew
	}
	now := s.now()
	if i.ReceivedDate.IsZero() {
		i.ReceivedDate = now
	}
	if i.LastInteraction.IsZero() {
		i.LastInteraction = i.ReceivedDate
	}

	s.inquiries[i.ID] = cloneInquiry(i)
	s.inquiryIDs = append(s.inquiryIDs, i.ID)
	return nil
}

func (s *Store) GetInquiry(id string) (*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("%w: inquiry %s", ErrNotFound, id)
	}
	return cloneInquiry(i), nil
}

// ListInquiries returns all inquiries in insertion order.
func (s *Store) ListInquiries() []models.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Inquiry, 0, len(s.inquiryIDs))
	for _, id := range s.inquiryIDs {
		out = append(out, *cloneInquiry(s.inquiries[id]))
	}
	return out
}

// AdvanceInquiry moves an inquiry along the permitted edge set and stamps
// LastInteraction.
func (s *Store) AdvanceInquiry(id string, next models.InquiryStatus) (*models.Inquiry, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown inquiry status %q", ErrValidation, next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advanceInquiryLocked(id, next)
}

func (s *Store) advanceInquiryLocked(id string, next models.InquiryStatus) (*models.Inquiry, error) {
	i, ok := s.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("%w: inquiry %s", ErrNotFound, id)
	}
	if !inquiryEdgeAllowed(i.Status, next) {
		return nil, fmt.Errorf("%w: inquiry %s cannot move %s -> %s", ErrInvalidTransition, id, i.Status, next)
	}

	i.Status = next
	i.LastInteraction = s.now()
	return cloneInquiry(i), nil
}

// ConvertInquiry marks the inquiry Converted and creates the resulting order
// with provenance back to the inquiry, atomically.
func (s *Store) ConvertInquiry(id string, req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := orderFromRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("%w: inquiry %s", ErrNotFound, id)
	}
	prevStatus := prev.Status
	prevInteraction := prev.LastInteraction

	inq, err := s.advanceInquiryLocked(id, models.InquiryConverted)
	if err != nil {
		return nil, err
	}

	order.InquiryID = inq.ID
	if err := s.createOrderLocked(order); err != nil {
		// Roll the inquiry back so a bad order payload doesn't burn it.
		s.inquiries[id].Status = prevStatus
		s.inquiries[id].LastInteraction = prevInteraction
		return nil, err
	}
	return cloneOrder(order), nil
}
