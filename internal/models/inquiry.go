package models

import "time"

// InquiryStatus is the lifecycle state of an inbound inquiry.
// Converted and Lost are terminal.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "New"
	InquiryContacted InquiryStatus = "Contacted"
	InquiryConverted InquiryStatus = "Converted"
	InquiryLost      InquiryStatus = "Lost"
)

// Terminal reports whether no further transitions are allowed from s.
func (s InquiryStatus) Terminal() bool {
	return s == InquiryConverted || s == InquiryLost
}

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryConverted, InquiryLost:
		return true
	}
	return false
}

type InquirySource string

const (
	SourceWebsite  InquirySource = "Website"
	SourceWhatsApp InquirySource = "WhatsApp"
	SourceWalkIn   InquirySource = "Walk-in"
)

func (s InquirySource) Valid() bool {
	switch s {
	case SourceWebsite, SourceWhatsApp, SourceWalkIn:
		return true
	}
	return false
}

type InquiryType string

const (
	InquiryNewSuit    InquiryType = "New Suit"
	InquiryAlteration InquiryType = "Alteration"
	InquiryWedding    InquiryType = "Wedding"
)

func (t InquiryType) Valid() bool {
	switch t {
	case InquiryNewSuit, InquiryAlteration, InquiryWedding:
		return true
	}
	return false
}

type InterestLevel string

const (
	InterestHot  InterestLevel = "Hot"
	InterestWarm InterestLevel = "Warm"
	InterestCold InterestLevel = "Cold"
)

func (l InterestLevel) Valid() bool {
	switch l {
	case InterestHot, InterestWarm, InterestCold:
		return true
	}
	return false
}

// Inquiry is an inbound contact from a prospective or returning client.
// ClientName is a denormalized copy of the client's name; the store refreshes
// it when the client is renamed.
type Inquiry struct {
	ID              string        `json:"id"`
	ClientID        string        `json:"client_id,omitempty"`
	ClientName      string        `json:"client_name"`
	Source          InquirySource `json:"source"`
	Type            InquiryType   `json:"type"`
	InterestLevel   InterestLevel `json:"interest_level"`
	Status          InquiryStatus `json:"status"`
	ReceivedDate    time.Time     `json:"received_date"`
	LastInteraction time.Time     `json:"last_interaction"`
	Message         string        `json:"message"`
}

// CreateInquiryRequest represents the request body for logging an inquiry
type CreateInquiryRequest struct {
	ClientID      string        `json:"client_id"`
	ClientName    string        `json:"client_name"`
	Source        InquirySource `json:"source"`
	Type          InquiryType   `json:"type"`
	InterestLevel InterestLevel `json:"interest_level"`
	Message       string        `json:"message"`
}

// AdvanceInquiryRequest carries the target status for an inquiry transition
type AdvanceInquiryRequest struct {
	Status InquiryStatus `json:"status"`
}
