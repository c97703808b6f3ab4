package service

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

// Overview is the role-scoped dashboard summary: what the SPA's chart
// placeholders showed, as numbers.
type Overview struct {
	Products      int64                        `json:"products"`
	Leads         int64                        `json:"leads"`
	LeadsByStatus map[domain.LeadStatus]int64  `json:"leads_by_status"`
	PipelineValue float64                      `json:"pipeline_value"`
	ClosedValue   float64                      `json:"closed_value"`
}

// AnalyticsService derives read-only aggregates from the catalog and lead
// stores, scoped the same way the list endpoints are.
type AnalyticsService struct {
	products ports.ProductRepository
	leads    ports.LeadRepository
}

func NewAnalyticsService(products ports.ProductRepository, leads ports.LeadRepository) *AnalyticsService {
	return &AnalyticsService{products: products, leads: leads}
}

// MarketerStats summarizes one marketer's activity as seen by a factory
// or an admin: lead volume and the value attached to it.
type MarketerStats struct {
	MarketerID   string  `json:"marketer_id"`
	MarketerName string  `json:"marketer_name"`
	Leads        int64   `json:"leads"`
	ClosedLeads  int64   `json:"closed_leads"`
	TotalValue   float64 `json:"total_value"`
}

// allLeads pages through the scoped lead set until it is exhausted, so
// aggregates cover every lead rather than the first page.
func (s *AnalyticsService) allLeads(ctx context.Context, filter ports.ListLeadsFilter) ([]*domain.Lead, int64, error) {
	filter.Limit = maxPageLimit

	var (
		all   []*domain.Lead
		total int64
	)
	for page := 1; ; page++ {
		filter.Page = page
		leads, n, err := s.leads.List(ctx, filter)
		if err != nil {
			return nil, 0, err
		}
		total = n
		all = append(all, leads...)
		if len(leads) == 0 || int64(len(all)) >= total {
			return all, total, nil
		}
	}
}

// Marketers aggregates lead activity per marketer. Factories see only the
// marketers working their products; admins see everyone.
func (s *AnalyticsService) Marketers(ctx context.Context, role domain.Role, factoryName string) ([]*MarketerStats, error) {
	filter := ports.ListLeadsFilter{}
	if role == domain.RoleFactory {
		filter.FactoryName = factoryName
	}
	leads, _, err := s.allLeads(ctx, filter)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*MarketerStats)
	order := make([]string, 0)
	for _, lead := range leads {
		stats, ok := byID[lead.MarketerID]
		if !ok {
			stats = &MarketerStats{MarketerID: lead.MarketerID, MarketerName: lead.MarketerName}
			byID[lead.MarketerID] = stats
			order = append(order, lead.MarketerID)
		}
		stats.Leads++
		stats.TotalValue += lead.Value
		if lead.Status == domain.LeadClosed {
			stats.ClosedLeads++
		}
	}

	out := make([]*MarketerStats, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out, nil
}

func (s *AnalyticsService) Overview(ctx context.Context, role domain.Role, userID, factoryName string) (*Overview, error) {
	productFilter := ports.ListProductsFilter{Page: 1, Limit: maxPageLimit}
	if role == domain.RoleFactory {
		productFilter.FactoryID = userID
	}
	_, productTotal, err := s.products.List(ctx, productFilter)
	if err != nil {
		return nil, err
	}

	leadFilter := ports.ListLeadsFilter{}
	switch role {
	case domain.RoleMarketer:
		leadFilter.MarketerID = userID
	case domain.RoleFactory:
		leadFilter.FactoryName = factoryName
	}
	leads, leadTotal, err := s.allLeads(ctx, leadFilter)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Products:      productTotal,
		Leads:         leadTotal,
		LeadsByStatus: make(map[domain.LeadStatus]int64),
	}
	for _, lead := range leads {
		overview.LeadsByStatus[lead.Status]++
		switch lead.Status {
		case domain.LeadClosed:
			overview.ClosedValue += lead.Value
		case domain.LeadLost:
			// lost deals count toward neither pipeline nor closed value
		default:
			overview.PipelineValue += lead.Value
		}
	}
	return overview, nil
}
