package services

import (
	"context"

	"tailor-backend/internal/events"
	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/store"
)

type ClientService struct {
	Store *store.Store
	Hub   *events.Hub
}

func NewClientService(s *store.Store, hub *events.Hub) *ClientService {
	return &ClientService{Store: s, Hub: hub}
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Notes:         req.Notes,
		FitPreference: req.FitPreference,
		Measurements:  req.Measurements,
	}

	if err := s.Store.CreateClient(client); err != nil {
		return nil, err
	}

	metrics.StoreMutationsTotal.WithLabelValues("client", "created").Inc()
	s.Hub.Publish("client", client.ID, "created")
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Store.GetClient(id)
}

func (s *ClientService) SearchByPhone(ctx context.Context, phone string) (*models.Client, error) {
	return s.Store.GetClientByPhone(phone)
}

func (s *ClientService) ListClients(ctx context.Context) []models.Client {
	return s.Store.ListClients()
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.Store.UpdateClient(id, req)
	if err != nil {
		return nil, err
	}

	metrics.StoreMutationsTotal.WithLabelValues("client", "updated").Inc()
	s.Hub.Publish("client", id, "updated")
	return client, nil
}
