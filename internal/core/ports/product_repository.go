package ports

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
type ListProductsFilter struct {
	Category     string // optional: exact category match
	Status       string // optional: listing status
	TargetMarket string // optional: market must be in target_markets
	FactoryID    string // non-empty = scoped to one factory's listings
	Search       string // optional: partial match on name or factory_name
	Page         int    // 1-based
	Limit        int    // max rows per page (capped by the service)
}

// ProductRepository defines persistence operations for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) error
	Delete(ctx context.Context, id string) error
	// Seed drops the collection and inserts the given fixtures. Called once
	// at startup so the catalog is recreated fresh on every boot.
	Seed(ctx context.Context, products []*domain.Product) error
}
