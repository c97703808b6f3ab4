package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

func newTestProductService() (*ProductService, *stubProductRepo) {
	repo := &stubProductRepo{products: []*domain.Product{
		{ID: "prod-1", Name: "Olive Oil", Category: "Food", FactoryID: "fact-1", FactoryName: "Delta Foods", Status: domain.ProductActive},
		{ID: "prod-2", Name: "Cotton Towels", Category: "Textiles", FactoryID: "fact-2", FactoryName: "Nile Textiles", Status: domain.ProductActive},
	}}
	return NewProductService(repo, zerolog.Nop()), repo
}

func TestProductService_Create(t *testing.T) {
	svc, repo := newTestProductService()

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "Ceramic Tiles",
		Category:    "Construction",
		Price:       12.5,
		FactoryID:   "fact-1",
		FactoryName: "Delta Foods",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected generated id")
	}
	if product.Status != domain.ProductActive {
		t.Fatalf("expected active status, got %s", product.Status)
	}
	if len(repo.products) != 3 {
		t.Fatalf("expected product stored, got %d", len(repo.products))
	}
}

func TestProductService_List_FactoryScoped(t *testing.T) {
	svc, _ := newTestProductService()
	ctx := context.Background()

	factory, err := svc.List(ctx, ports.ListProductsInput{Role: domain.RoleFactory, UserID: "fact-1"})
	if err != nil {
		t.Fatalf("factory list failed: %v", err)
	}
	if factory.Total != 1 || factory.Items[0].ID != "prod-1" {
		t.Fatalf("expected factory to see only its listing, got %+v", factory.Items)
	}

	marketer, err := svc.List(ctx, ports.ListProductsInput{Role: domain.RoleMarketer, UserID: "mkt-1"})
	if err != nil {
		t.Fatalf("marketer list failed: %v", err)
	}
	if marketer.Total != 2 {
		t.Fatalf("expected marketer to see the whole catalog, got %d", marketer.Total)
	}
}

func TestProductService_List_NormalizesPagination(t *testing.T) {
	svc, _ := newTestProductService()

	result, err := svc.List(context.Background(), ports.ListProductsInput{Role: domain.RoleAdmin, Page: -3, Limit: 100000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, result.Limit)
	}
}

func TestProductService_UpdateStatus_Ownership(t *testing.T) {
	svc, _ := newTestProductService()
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, "prod-1", domain.ProductPaused, domain.RoleFactory, "fact-2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for foreign factory, got %v", err)
	}

	product, err := svc.UpdateStatus(ctx, "prod-1", domain.ProductPaused, domain.RoleFactory, "fact-1")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if product.Status != domain.ProductPaused {
		t.Fatalf("expected paused, got %s", product.Status)
	}

	// Admins bypass ownership.
	if _, err := svc.UpdateStatus(ctx, "prod-2", domain.ProductArchived, domain.RoleAdmin, "admin-1"); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	svc, repo := newTestProductService()
	ctx := context.Background()

	if err := svc.Delete(ctx, "prod-1", domain.RoleFactory, "fact-2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, "prod-1", domain.RoleFactory, "fact-1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.products) != 1 {
		t.Fatalf("expected product removed, got %d", len(repo.products))
	}
	if err := svc.Delete(ctx, "prod-missing", domain.RoleAdmin, ""); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
