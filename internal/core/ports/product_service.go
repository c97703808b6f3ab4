package ports

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// CreateProductInput carries all data needed to list a new product.
type CreateProductInput struct {
	Name          string
	Category      string
	Description   string
	Price         float64
	Commission    float64
	TargetMarkets []string
	Image         string
	// FactoryID and FactoryName come from the session, never the payload.
	FactoryID   string
	FactoryName string
}

// ListProductsInput carries all parameters for the browse endpoint.
type ListProductsInput struct {
	Role         domain.Role
	UserID       string
	Category     string
	Status       string
	TargetMarket string
	Search       string
	Page         int
	Limit        int
}

// ListProductsResult is a page of products plus pagination metadata.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProductStatus, role domain.Role, userID string) (*domain.Product, error)
	Delete(ctx context.Context, id string, role domain.Role, userID string) error
}
