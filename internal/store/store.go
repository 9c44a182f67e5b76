package store

import (
	"sync"
	"time"

	"tailor-backend/internal/models"
)

// Store owns the canonical collections of clients, inquiries, orders and
// appointments. All mutations go through its methods under one mutex; reads
// hand out deep copies so derived views can never mutate canonical state.
//
// There is exactly one Store per process, passed explicitly to every
// consumer. Nothing here persists across restarts.
type Store struct {
	mu sync.RWMutex

	clients      map[string]*models.Client
	inquiries    map[string]*models.Inquiry
	orders       map[string]*models.Order
	appointments map[string]*models.Appointment

	// Insertion order per collection. Board columns and list views preserve it.
	clientIDs      []string
	inquiryIDs     []string
	orderIDs       []string
	appointmentIDs []string

	// now is swappable in tests.
	now func() time.Time
}

func New() *Store {
	return &Store{
		clients:      make(map[string]*models.Client),
		inquiries:    make(map[string]*models.Inquiry),
		orders:       make(map[string]*models.Order),
		appointments: make(map[string]*models.Appointment),
		now:          time.Now,
	}
}

// SetClock overrides the store's notion of "now". Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Counts returns the size of each collection (health endpoint).
func (s *Store) Counts() (clients, inquiries, orders, appointments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients), len(s.inquiries), len(s.orders), len(s.appointments)
}

func copyMeasurements(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copySlots(s []time.Time) []time.Time {
	if s == nil {
		return nil
	}
	out := make([]time.Time, len(s))
	copy(out, s)
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneClient(c *models.Client) *models.Client {
	out := *c
	out.Measurements = copyMeasurements(c.Measurements)
	return &out
}

func cloneInquiry(i *models.Inquiry) *models.Inquiry {
	out := *i
	return &out
}

func cloneOrder(o *models.Order) *models.Order {
	out := *o
	out.Measurements = copyMeasurements(o.Measurements)
	out.SuggestedFitSlots = copySlots(o.SuggestedFitSlots)
	out.AppointmentSuggestedSlots = copySlots(o.AppointmentSuggestedSlots)
	out.SelectedFitSlot = copyTime(o.SelectedFitSlot)
	out.AppointmentSelectedSlot = copyTime(o.AppointmentSelectedSlot)
	out.NextFitOnDate = copyTime(o.NextFitOnDate)
	return &out
}

func cloneAppointment(a *models.Appointment) *models.Appointment {
	out := *a
	return &out
}
