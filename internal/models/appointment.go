package models

import "time"

type AppointmentType string

const (
	ApptConsultation AppointmentType = "Consultation"
	ApptMeasurement  AppointmentType = "Measurement"
	ApptFitOn        AppointmentType = "Fit-On"
	ApptAdjustment   AppointmentType = "Adjustment"
)

func (t AppointmentType) Valid() bool {
	switch t {
	case ApptConsultation, ApptMeasurement, ApptFitOn, ApptAdjustment:
		return true
	}
	return false
}

// AppointmentStatus is Scheduled until the visit is Completed or Cancelled;
// both of those are terminal.
type AppointmentStatus string

const (
	ApptScheduled AppointmentStatus = "Scheduled"
	ApptCompleted AppointmentStatus = "Completed"
	ApptCancelled AppointmentStatus = "Cancelled"
)

func (s AppointmentStatus) Terminal() bool {
	return s == ApptCompleted || s == ApptCancelled
}

// Appointment is a booked shop visit. Created by staff directly or as a side
// effect of slot selection on an order.
type Appointment struct {
	ID          string            `json:"id"`
	ClientID    string            `json:"client_id"`
	ClientName  string            `json:"client_name"`
	OrderID     string            `json:"order_id,omitempty"`
	Type        AppointmentType   `json:"type"`
	Date        time.Time         `json:"date"`
	DurationMin int               `json:"duration_min"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CreateAppointmentRequest represents the request body for booking a visit
type CreateAppointmentRequest struct {
	ClientID    string          `json:"client_id"`
	OrderID     string          `json:"order_id"`
	Type        AppointmentType `json:"type"`
	Date        time.Time       `json:"date"`
	DurationMin int             `json:"duration_min"`
}
