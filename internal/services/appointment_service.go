package services

import (
	"context"

	"tailor-backend/internal/events"
	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/store"
)

type AppointmentService struct {
	Store *store.Store
	Hub   *events.Hub
}

func NewAppointmentService(s *store.Store, hub *events.Hub) *AppointmentService {
	return &AppointmentService{Store: s, Hub: hub}
}

func (s *AppointmentService) publish(id, action string) {
	metrics.StoreMutationsTotal.WithLabelValues("appointment", action).Inc()
	s.Hub.Publish("appointment", id, action)
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	appt := &models.Appointment{
		ClientID:    req.ClientID,
		OrderID:     req.OrderID,
		Type:        req.Type,
		Date:        req.Date,
		DurationMin: req.DurationMin,
	}

	if err := s.Store.CreateAppointment(appt); err != nil {
		return nil, err
	}

	s.publish(appt.ID, "created")
	return appt, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Store.GetAppointment(id)
}

func (s *AppointmentService) ListAppointments(ctx context.Context) []models.Appointment {
	return s.Store.ListAppointments()
}

func (s *AppointmentService) CompleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Store.CompleteAppointment(id)
	if err != nil {
		return nil, err
	}

	s.publish(id, "completed")
	return appt, nil
}

func (s *AppointmentService) CancelAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Store.CancelAppointment(id)
	if err != nil {
		return nil, err
	}

	s.publish(id, "cancelled")
	return appt, nil
}
