package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

// pagingLeadRepo applies Page and Limit the way the Mongo repository does,
// so tests exercise the page-walking in the aggregates.
type pagingLeadRepo struct {
	stubLeadRepo
}

func (r *pagingLeadRepo) List(ctx context.Context, filter ports.ListLeadsFilter) ([]*domain.Lead, int64, error) {
	all, total, err := r.stubLeadRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func seedManyLeads(repo *pagingLeadRepo, count int) {
	leads := make([]*domain.Lead, 0, count)
	for i := 0; i < count; i++ {
		status := domain.LeadNew
		if i%5 == 0 {
			status = domain.LeadClosed
		}
		marketer := fmt.Sprintf("mkt-%d", i%3)
		leads = append(leads, &domain.Lead{
			ID:           fmt.Sprintf("lead-%d", i),
			FactoryName:  "Delta Foods",
			MarketerID:   marketer,
			MarketerName: marketer,
			Status:       status,
			Value:        100,
		})
	}
	_ = repo.Seed(context.Background(), leads)
}

func TestAnalyticsService_Overview_PastPageLimit(t *testing.T) {
	leadRepo := &pagingLeadRepo{}
	seedManyLeads(leadRepo, 250)
	svc := NewAnalyticsService(&stubProductRepo{}, leadRepo)

	overview, err := svc.Overview(context.Background(), domain.RoleAdmin, "", "")
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.Leads != 250 {
		t.Fatalf("expected 250 leads, got %d", overview.Leads)
	}

	var byStatus int64
	for _, n := range overview.LeadsByStatus {
		byStatus += n
	}
	if byStatus != overview.Leads {
		t.Fatalf("status breakdown covers %d of %d leads", byStatus, overview.Leads)
	}
	// 50 closed at 100 each, 200 still in the pipeline.
	if overview.ClosedValue != 5000 {
		t.Fatalf("expected closed value 5000, got %v", overview.ClosedValue)
	}
	if overview.PipelineValue != 20000 {
		t.Fatalf("expected pipeline value 20000, got %v", overview.PipelineValue)
	}
}

func TestAnalyticsService_Marketers_PastPageLimit(t *testing.T) {
	leadRepo := &pagingLeadRepo{}
	seedManyLeads(leadRepo, 250)
	svc := NewAnalyticsService(&stubProductRepo{}, leadRepo)

	stats, err := svc.Marketers(context.Background(), domain.RoleFactory, "Delta Foods")
	if err != nil {
		t.Fatalf("marketers failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 marketers, got %d", len(stats))
	}

	var leads int64
	for _, s := range stats {
		leads += s.Leads
	}
	if leads != 250 {
		t.Fatalf("roster covers %d of 250 leads", leads)
	}
}

func TestAnalyticsService_Overview_FactoryScoped(t *testing.T) {
	leadRepo := &pagingLeadRepo{}
	_ = leadRepo.Seed(context.Background(), []*domain.Lead{
		{ID: "lead-1", FactoryName: "Delta Foods", MarketerID: "mkt-1", Status: domain.LeadNew, Value: 1000},
		{ID: "lead-2", FactoryName: "Nile Textiles", MarketerID: "mkt-1", Status: domain.LeadNew, Value: 9000},
	})
	svc := NewAnalyticsService(&stubProductRepo{}, leadRepo)

	overview, err := svc.Overview(context.Background(), domain.RoleFactory, "fact-1", "Delta Foods")
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.Leads != 1 {
		t.Fatalf("expected 1 lead, got %d", overview.Leads)
	}
	if overview.PipelineValue != 1000 {
		t.Fatalf("expected pipeline value 1000, got %v", overview.PipelineValue)
	}
}
