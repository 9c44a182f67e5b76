package store

import (
	"fmt"

	"github.com/google/uuid"

	"tailor-backend/internal/models"
)

// CreateClient adds a client record. An empty ID is assigned a fresh UUID;
// seed fixtures pass their own stable ids.
func (s *Store) CreateClient(c *models.Client) error {
	if c.Name == "" || c.Phone == "" {
		return fmt.Errorf("%w: name and phone are required", ErrValidation)
	}
	if c.FitPreference == "" {
		c.FitPreference = models.FitRegular
	}
	if !c.FitPreference.Valid() {
		return fmt.Errorf("%w: unknown fit preference %q", ErrValidation, c.FitPreference)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := s.clients[c.ID]; exists {
		return fmt.Errorf("%w: client %s already exists", ErrValidation, c.ID)
	}

	now := s.now()
	c.CreatedAt = now
	c.UpdatedAt = now

	s.clients[c.ID] = cloneClient(c)
	s.clientIDs = append(s.clientIDs, c.ID)
	return nil
}

func (s *Store) GetClient(id string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", ErrNotFound, id)
	}
	return cloneClient(c), nil
}

func (s *Store) GetClientByPhone(phone string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.clientIDs {
		if s.clients[id].Phone == phone {
			return cloneClient(s.clients[id]), nil
		}
	}
	return nil, fmt.Errorf("%w: client with phone %s", ErrNotFound, phone)
}

// ListClients returns all clients in insertion order.
func (s *Store) ListClients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(s.clientIDs))
	for _, id := range s.clientIDs {
		out = append(out, *cloneClient(s.clients[id]))
	}
	return out
}

// UpdateClient edits a client's profile. A rename is propagated to the
// denormalized client_name copies on inquiries, orders and appointments so
// views never show a stale name.
func (s *Store) UpdateClient(id string, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}
	if req.FitPreference != "" && !req.FitPreference.Valid() {
		return nil, fmt.Errorf("%w: unknown fit preference %q", ErrValidation, req.FitPreference)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", ErrNotFound, id)
	}

	renamed := c.Name != req.Name
	c.Name = req.Name
	c.Phone = req.Phone
	c.Email = req.Email
	c.Notes = req.Notes
	if req.FitPreference != "" {
		c.FitPreference = req.FitPreference
	}
	if req.Measurements != nil {
		c.Measurements = copyMeasurements(req.Measurements)
	}
	c.UpdatedAt = s.now()

	if renamed {
		for _, i := range s.inquiries {
			if i.ClientID == id {
				i.ClientName = c.Name
			}
		}
		for _, o := range s.orders {
			if o.ClientID == id {
				o.ClientName = c.Name
			}
		}
		for _, a := range s.appointments {
			if a.ClientID == id {
				a.ClientName = c.Name
			}
		}
	}

	return cloneClient(c), nil
}
