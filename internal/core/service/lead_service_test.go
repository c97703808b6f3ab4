package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

type stubLeadRepo struct {
	leads []*domain.Lead
}

func (r *stubLeadRepo) Create(_ context.Context, lead *domain.Lead) error {
	clone := *lead
	r.leads = append(r.leads, &clone)
	return nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	for _, l := range r.leads {
		if l.ID == id {
			clone := *l
			return &clone, nil
		}
	}
	return nil, domain.ErrLeadNotFound
}

func (r *stubLeadRepo) List(_ context.Context, filter ports.ListLeadsFilter) ([]*domain.Lead, int64, error) {
	var out []*domain.Lead
	for _, l := range r.leads {
		if filter.MarketerID != "" && l.MarketerID != filter.MarketerID {
			continue
		}
		if filter.FactoryName != "" && l.FactoryName != filter.FactoryName {
			continue
		}
		if filter.Status != "" && string(l.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(l.ClientName, filter.Search) {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubLeadRepo) UpdateStatus(_ context.Context, id string, status domain.LeadStatus) error {
	for _, l := range r.leads {
		if l.ID == id {
			l.Status = status
			return nil
		}
	}
	return domain.ErrLeadNotFound
}

func (r *stubLeadRepo) Seed(_ context.Context, leads []*domain.Lead) error {
	r.leads = leads
	return nil
}

type stubProductRepo struct {
	products []*domain.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	clone := *p
	r.products = append(r.products, &clone)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if filter.FactoryID != "" && p.FactoryID != filter.FactoryID {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) UpdateStatus(_ context.Context, id string, status domain.ProductStatus) error {
	for _, p := range r.products {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *stubProductRepo) Seed(_ context.Context, products []*domain.Product) error {
	r.products = products
	return nil
}

type recordingNotifier struct {
	events []ports.LeadEvent
}

func (n *recordingNotifier) Notify(_ context.Context, event ports.LeadEvent) error {
	n.events = append(n.events, event)
	return nil
}

func newTestLeadService() (*LeadService, *stubLeadRepo, *recordingNotifier) {
	leadRepo := &stubLeadRepo{}
	productRepo := &stubProductRepo{products: []*domain.Product{
		{ID: "prod-1", Name: "Olive Oil", FactoryID: "fact-1", FactoryName: "Delta Foods", Status: domain.ProductActive},
	}}
	notifier := &recordingNotifier{}
	svc := NewLeadService(leadRepo, productRepo, notifier, zerolog.Nop())
	return svc, leadRepo, notifier
}

func TestLeadService_Submit(t *testing.T) {
	svc, repo, notifier := newTestLeadService()

	lead, err := svc.Submit(context.Background(), ports.SubmitLeadInput{
		ClientName:   "Berlin Imports",
		Country:      "Germany",
		ProductID:    "prod-1",
		Quantity:     2,
		Value:        15000,
		MarketerID:   "mkt-1",
		MarketerName: "Ahmed",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if lead.Status != domain.LeadNew {
		t.Fatalf("expected new status, got %s", lead.Status)
	}
	if lead.ProductName != "Olive Oil" || lead.FactoryName != "Delta Foods" {
		t.Fatalf("expected product denormalized onto lead, got %+v", lead)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(repo.leads))
	}
	if len(notifier.events) != 1 || notifier.events[0].Status != domain.LeadNew {
		t.Fatalf("expected one new-lead notification, got %+v", notifier.events)
	}
}

func TestLeadService_Submit_UnknownProduct(t *testing.T) {
	svc, _, _ := newTestLeadService()

	_, err := svc.Submit(context.Background(), ports.SubmitLeadInput{ProductID: "prod-missing", MarketerID: "mkt-1"})
	if err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestLeadService_UpdateStatus(t *testing.T) {
	svc, repo, notifier := newTestLeadService()
	_ = repo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", FactoryName: "Delta Foods", MarketerID: "mkt-1", Status: domain.LeadNew},
	})

	lead, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadContacted, domain.RoleFactory, "Delta Foods")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if lead.Status != domain.LeadContacted {
		t.Fatalf("expected contacted, got %s", lead.Status)
	}
	if repo.leads[0].Status != domain.LeadContacted {
		t.Fatalf("expected persisted status change")
	}
	if len(notifier.events) != 1 || notifier.events[0].Status != domain.LeadContacted {
		t.Fatalf("expected status-change notification, got %+v", notifier.events)
	}
}

func TestLeadService_UpdateStatus_InvalidTransition(t *testing.T) {
	svc, repo, _ := newTestLeadService()
	_ = repo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", FactoryName: "Delta Foods", Status: domain.LeadNew},
	})

	if _, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadClosed, domain.RoleAdmin, ""); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestLeadService_UpdateStatus_MarketerForbidden(t *testing.T) {
	svc, repo, _ := newTestLeadService()
	_ = repo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", Status: domain.LeadNew},
	})

	if _, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadContacted, domain.RoleMarketer, ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestLeadService_UpdateStatus_ForeignFactory(t *testing.T) {
	svc, repo, notifier := newTestLeadService()
	_ = repo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", FactoryName: "Delta Foods", Status: domain.LeadNew},
	})

	if _, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadContacted, domain.RoleFactory, "Nile Textiles"); err != domain.ErrLeadNotFound {
		t.Fatalf("expected ErrLeadNotFound for another factory's lead, got %v", err)
	}
	if repo.leads[0].Status != domain.LeadNew {
		t.Fatalf("expected status untouched, got %s", repo.leads[0].Status)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("expected no notification, got %+v", notifier.events)
	}

	// An admin is not bound to any factory name.
	lead, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadContacted, domain.RoleAdmin, "")
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if lead.Status != domain.LeadContacted {
		t.Fatalf("expected contacted, got %s", lead.Status)
	}
}

func TestLeadService_List_RoleScoping(t *testing.T) {
	svc, repo, _ := newTestLeadService()
	_ = repo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", MarketerID: "mkt-1", FactoryName: "Delta Foods", Status: domain.LeadNew},
		{ID: "lead-2", MarketerID: "mkt-2", FactoryName: "Delta Foods", Status: domain.LeadNew},
		{ID: "lead-3", MarketerID: "mkt-1", FactoryName: "Cairo Crafts", Status: domain.LeadNew},
	})
	ctx := context.Background()

	marketer, err := svc.List(ctx, ports.ListLeadsInput{Role: domain.RoleMarketer, UserID: "mkt-1"})
	if err != nil {
		t.Fatalf("marketer list failed: %v", err)
	}
	if marketer.Total != 2 {
		t.Fatalf("expected marketer to see 2 leads, got %d", marketer.Total)
	}

	factory, err := svc.List(ctx, ports.ListLeadsInput{Role: domain.RoleFactory, FactoryName: "Delta Foods"})
	if err != nil {
		t.Fatalf("factory list failed: %v", err)
	}
	if factory.Total != 2 {
		t.Fatalf("expected factory to see 2 leads, got %d", factory.Total)
	}

	admin, err := svc.List(ctx, ports.ListLeadsInput{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if admin.Total != 3 {
		t.Fatalf("expected admin to see all 3 leads, got %d", admin.Total)
	}
}

func TestLeadService_Get_Visibility(t *testing.T) {
	svc, repo, _ := newTestLeadService()
	_ = repo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", MarketerID: "mkt-1", FactoryName: "Delta Foods", Status: domain.LeadNew},
	})
	ctx := context.Background()

	if _, err := svc.Get(ctx, "lead-1", domain.RoleMarketer, "mkt-1", ""); err != nil {
		t.Fatalf("owner should see own lead: %v", err)
	}
	if _, err := svc.Get(ctx, "lead-1", domain.RoleMarketer, "mkt-2", ""); err != domain.ErrLeadNotFound {
		t.Fatalf("expected ErrLeadNotFound for foreign marketer, got %v", err)
	}
	if _, err := svc.Get(ctx, "lead-1", domain.RoleFactory, "", "Cairo Crafts"); err != domain.ErrLeadNotFound {
		t.Fatalf("expected ErrLeadNotFound for foreign factory, got %v", err)
	}
	if _, err := svc.Get(ctx, "lead-1", domain.RoleAdmin, "", ""); err != nil {
		t.Fatalf("admin should see any lead: %v", err)
	}
}
