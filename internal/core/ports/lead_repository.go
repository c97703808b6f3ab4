package ports

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// ListLeadsFilter carries all query parameters for listing leads. Role
// scoping is resolved by the service layer before it reaches here.
type ListLeadsFilter struct {
	MarketerID  string // non-empty = only this marketer's leads
	FactoryName string // non-empty = only leads on this factory's products
	Status      string // optional: lead status
	Search      string // optional: partial match on client_name or product_name
	Page        int    // 1-based
	Limit       int
}

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter ListLeadsFilter) ([]*domain.Lead, int64, error)
	// UpdateStatus sets the new status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error
	// Seed drops the collection and inserts the given fixtures.
	Seed(ctx context.Context, leads []*domain.Lead) error
}
