package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		Price:         input.Price,
		Commission:    input.Commission,
		Status:        domain.ProductActive,
		TargetMarkets: input.TargetMarkets,
		FactoryID:     input.FactoryID,
		FactoryName:   input.FactoryName,
		Image:         input.Image,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", product.ID).Str("factory", product.FactoryName).Msg("product listed")
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListProductsFilter{
		Category:     input.Category,
		Status:       input.Status,
		TargetMarket: input.TargetMarket,
		Search:       input.Search,
		Page:         page,
		Limit:        limit,
	}
	// Factories browse their own listings; marketers and admins see the
	// whole catalog.
	if input.Role == domain.RoleFactory {
		filter.FactoryID = input.UserID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *ProductService) UpdateStatus(ctx context.Context, id string, status domain.ProductStatus, role domain.Role, userID string) (*domain.Product, error) {
	product, err := s.authorize(ctx, id, role, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	product.Status = status

	s.log.Info().Str("product_id", id).Str("status", string(status)).Msg("product status updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string, role domain.Role, userID string) error {
	if _, err := s.authorize(ctx, id, role, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize loads the product and checks ownership: factories may only
// touch their own listings, admins may touch anything.
func (s *ProductService) authorize(ctx context.Context, id string, role domain.Role, userID string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && product.FactoryID != userID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
