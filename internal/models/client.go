package models

import "time"

// FitPreference is the cut a client prefers for their garments.
type FitPreference string

const (
	FitSlim    FitPreference = "Slim"
	FitRegular FitPreference = "Regular"
	FitComfort FitPreference = "Comfort"
)

// Valid reports whether p is one of the known fit preferences.
func (p FitPreference) Valid() bool {
	switch p {
	case FitSlim, FitRegular, FitComfort:
		return true
	}
	return false
}

// Client is a CRM record. TotalOrders and LTV are denormalized counters
// maintained by the store: TotalOrders on order creation, LTV on delivery.
type Client struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email"`
	TotalOrders   int                `json:"total_orders"`
	LTV           float64            `json:"ltv"`
	Notes         string             `json:"notes"`
	FitPreference FitPreference      `json:"fit_preference"`
	Measurements  map[string]float64 `json:"measurements"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email"`
	Notes         string             `json:"notes"`
	FitPreference FitPreference      `json:"fit_preference"`
	Measurements  map[string]float64 `json:"measurements"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email"`
	Notes         string             `json:"notes"`
	FitPreference FitPreference      `json:"fit_preference"`
	Measurements  map[string]float64 `json:"measurements"`
}
