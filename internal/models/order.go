package models

import "time"

// OrderStatus is a production stage. Stages are strictly ordered; the store
// only permits single-step forward moves.
type OrderStatus string

const (
	OrderNew         OrderStatus = "New"
	OrderCutting     OrderStatus = "Cutting"
	OrderStitching   OrderStatus = "Stitching"
	OrderFirstFit    OrderStatus = "First Fit-On"
	OrderAdjustments OrderStatus = "Adjustments"
	OrderQC          OrderStatus = "Final QC"
	OrderReady       OrderStatus = "Ready"
	OrderDelivered   OrderStatus = "Delivered"
)

// OrderStatusChain lists the production stages in order.
var OrderStatusChain = []OrderStatus{
	OrderNew,
	OrderCutting,
	OrderStitching,
	OrderFirstFit,
	OrderAdjustments,
	OrderQC,
	OrderReady,
	OrderDelivered,
}

// Index returns the position of s in the production chain, or -1 if s is not
// a known stage.
func (s OrderStatus) Index() int {
	for i, st := range OrderStatusChain {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool {
	return s.Index() >= 0
}

// ChangeRequestStatus tracks the change-request overlay on an order.
type ChangeRequestStatus string

const (
	ChangeNone      ChangeRequestStatus = ""
	ChangePending   ChangeRequestStatus = "Pending"
	ChangeReviewing ChangeRequestStatus = "Reviewing"
	ChangeScheduled ChangeRequestStatus = "Scheduled"
	ChangeResolved  ChangeRequestStatus = "Resolved"
)

// Open reports whether a change request is currently blocking the order.
func (s ChangeRequestStatus) Open() bool {
	return s != ChangeNone && s != ChangeResolved
}

// Order is a garment job moving through production. The changeRequest* fields
// form a negotiation overlay that can be entered and resolved repeatedly; the
// fit-slot fields are an independent overlay used during fitting stages.
type Order struct {
	ID             string             `json:"id"`
	InquiryID      string             `json:"inquiry_id,omitempty"`
	ClientID       string             `json:"client_id"`
	ClientName     string             `json:"client_name"`
	GarmentType    string             `json:"garment_type"`
	Fabric         string             `json:"fabric"`
	Price          float64            `json:"price"`
	PaidAmount     float64            `json:"paid_amount"`
	Status         OrderStatus        `json:"status"`
	DueDate        time.Time          `json:"due_date"`
	NextFitOnDate  *time.Time         `json:"next_fit_on_date,omitempty"`
	TailorAssigned string             `json:"tailor_assigned,omitempty"`
	Measurements   map[string]float64 `json:"measurements"`
	Notes          string             `json:"notes"`

	// Fit-on negotiation overlay (valid during First Fit-On / Adjustments).
	SuggestedFitSlots []time.Time `json:"suggested_fit_slots,omitempty"`
	SelectedFitSlot   *time.Time  `json:"selected_fit_slot,omitempty"`

	// Change-request overlay.
	ChangeRequest             string              `json:"change_request,omitempty"`
	ChangeRequestStatus       ChangeRequestStatus `json:"change_request_status,omitempty"`
	AppointmentSuggestedSlots []time.Time         `json:"appointment_suggested_slots,omitempty"`
	AppointmentSelectedSlot   *time.Time          `json:"appointment_selected_slot,omitempty"`

	// Post-delivery feedback, write-once.
	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	InquiryID      string             `json:"inquiry_id"`
	ClientID       string             `json:"client_id"`
	GarmentType    string             `json:"garment_type"`
	Fabric         string             `json:"fabric"`
	Price          float64            `json:"price"`
	PaidAmount     float64            `json:"paid_amount"`
	DueDate        time.Time          `json:"due_date"`
	TailorAssigned string             `json:"tailor_assigned"`
	Measurements   map[string]float64 `json:"measurements"`
	Notes          string             `json:"notes"`
}

// UpdateOrderRequest carries the staff-editable order details. Nil fields are
// left unchanged.
type UpdateOrderRequest struct {
	Fabric         *string            `json:"fabric,omitempty"`
	Price          *float64           `json:"price,omitempty"`
	PaidAmount     *float64           `json:"paid_amount,omitempty"`
	DueDate        *time.Time         `json:"due_date,omitempty"`
	NextFitOnDate  *time.Time         `json:"next_fit_on_date,omitempty"`
	TailorAssigned *string            `json:"tailor_assigned,omitempty"`
	Measurements   map[string]float64 `json:"measurements,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
}

// AdvanceOrderRequest carries the target production stage
type AdvanceOrderRequest struct {
	Status OrderStatus `json:"status"`
}

// ChangeRequestBody carries the client's reason for a change request
type ChangeRequestBody struct {
	Reason string `json:"reason"`
}

// ProposeSlotsRequest carries candidate appointment slots, in preference order
type ProposeSlotsRequest struct {
	Slots []time.Time `json:"slots"`
}

// SelectSlotRequest carries the slot the client picked
type SelectSlotRequest struct {
	Slot time.Time `json:"slot"`
}

// RateOrderRequest carries a 1-5 rating and optional feedback text
type RateOrderRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}
