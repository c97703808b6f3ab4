package ports

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// SubmitLeadInput carries a marketer's new buyer inquiry.
type SubmitLeadInput struct {
	ClientName string
	Country    string
	ProductID  string
	Quantity   int
	Value      float64
	Notes      string
	// MarketerID and MarketerName come from the session.
	MarketerID   string
	MarketerName string
}

// ListLeadsInput carries all parameters for the lead list endpoint. The
// caller's role decides the visibility scope: marketers see their own
// leads, factories see leads on their products, admins see everything.
type ListLeadsInput struct {
	Role        domain.Role
	UserID      string
	FactoryName string
	Status      string
	Search      string
	Page        int
	Limit       int
}

// ListLeadsResult is a page of leads plus pagination metadata.
type ListLeadsResult struct {
	Items      []*domain.Lead
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// LeadService defines use-case operations for leads.
type LeadService interface {
	Submit(ctx context.Context, input SubmitLeadInput) (*domain.Lead, error)
	Get(ctx context.Context, id string, role domain.Role, userID, factoryName string) (*domain.Lead, error)
	List(ctx context.Context, input ListLeadsInput) (*ListLeadsResult, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, role domain.Role, factoryName string) (*domain.Lead, error)
}
