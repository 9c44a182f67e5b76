package store

import (
	"fmt"

	"github.com/google/uuid"

	"tailor-backend/internal/models"
)

// CreateAppointment books a shop visit for an existing client.
func (s *Store) CreateAppointment(a *models.Appointment) error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrValidation, a.Type)
	}
	if a.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if a.DurationMin <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[a.ClientID]
	if !ok {
		return fmt.Errorf("%w: client %s", ErrNotFound, a.ClientID)
	}
	a.ClientName = c.Name

	s.createAppointmentLocked(a)
	return nil
}

func (s *Store) createAppointmentLocked(a *models.Appointment) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.ApptScheduled
	}
	a.CreatedAt = s.now()

	s.appointments[a.ID] = cloneAppointment(a)
	s.appointmentIDs = append(s.appointmentIDs, a.ID)
}

func (s *Store) GetAppointment(id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	return cloneAppointment(a), nil
}

// ListAppointments returns all appointments in insertion order.
func (s *Store) ListAppointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.appointmentIDs))
	for _, id := range s.appointmentIDs {
		out = append(out, *cloneAppointment(s.appointments[id]))
	}
	return out
}

// CompleteAppointment marks a scheduled visit as done. Terminal.
func (s *Store) CompleteAppointment(id string) (*models.Appointment, error) {
	return s.closeAppointment(id, models.ApptCompleted)
}

// CancelAppointment calls off a scheduled visit. Terminal.
func (s *Store) CancelAppointment(id string) (*models.Appointment, error) {
	return s.closeAppointment(id, models.ApptCancelled)
}

func (s *Store) closeAppointment(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	if a.Status.Terminal() {
		return nil, fmt.Errorf("%w: appointment %s is already %s", ErrInvalidTransition, id, a.Status)
	}

	a.Status = status
	return cloneAppointment(a), nil
}
