package domain

import (
	"errors"
	"time"
)

// LeadStatus represents the lifecycle state of a buyer inquiry.
type LeadStatus string

const (
	LeadNew             LeadStatus = "new"
	LeadContacted       LeadStatus = "contacted"
	LeadSampleRequested LeadStatus = "sample_requested"
	LeadNegotiating     LeadStatus = "negotiating"
	LeadClosed          LeadStatus = "closed"
	LeadLost            LeadStatus = "lost"
)

// validLeadTransitions defines the allowed state machine transitions.
var validLeadTransitions = map[LeadStatus][]LeadStatus{
	LeadNew:             {LeadContacted, LeadLost},
	LeadContacted:       {LeadSampleRequested, LeadNegotiating, LeadLost},
	LeadSampleRequested: {LeadNegotiating, LeadLost},
	LeadNegotiating:     {LeadClosed, LeadLost},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrLeadNotFound = errors.New("lead not found")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to
// next is valid. Closed and lost are terminal.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range validLeadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lead is a prospective buyer inquiry tied to a product.
type Lead struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	ClientName   string     `json:"client_name" bson:"client_name"`
	Country      string     `json:"country" bson:"country"`
	ProductID    string     `json:"product_id" bson:"product_id"`
	ProductName  string     `json:"product_name" bson:"product_name"`
	FactoryName  string     `json:"factory_name" bson:"factory_name"`
	MarketerID   string     `json:"marketer_id,omitempty" bson:"marketer_id,omitempty"`
	MarketerName string     `json:"marketer_name" bson:"marketer_name"`
	Status       LeadStatus `json:"status" bson:"status"`
	Quantity     int        `json:"quantity" bson:"quantity"`
	Value        float64    `json:"value" bson:"value"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}
