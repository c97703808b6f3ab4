package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

type LeadService struct {
	repo     ports.LeadRepository
	products ports.ProductRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, products ports.ProductRepository, notifier ports.Notifier, log zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, products: products, notifier: notifier, log: log}
}

// Submit records a marketer's buyer inquiry against a catalog product.
func (s *LeadService) Submit(ctx context.Context, input ports.SubmitLeadInput) (*domain.Lead, error) {
	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		ID:           uuid.NewString(),
		ClientName:   input.ClientName,
		Country:      input.Country,
		ProductID:    product.ID,
		ProductName:  product.Name,
		FactoryName:  product.FactoryName,
		MarketerID:   input.MarketerID,
		MarketerName: input.MarketerName,
		Status:       domain.LeadNew,
		Quantity:     input.Quantity,
		Value:        input.Value,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		s.log.Error().Err(err).Msg("failed to create lead")
		return nil, err
	}

	s.notify(ctx, lead)
	s.log.Info().Str("lead_id", lead.ID).Str("product_id", lead.ProductID).Msg("lead submitted")
	return lead, nil
}

func (s *LeadService) Get(ctx context.Context, id string, role domain.Role, userID, factoryName string) (*domain.Lead, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(lead, role, userID, factoryName) {
		return nil, domain.ErrLeadNotFound
	}
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, input ports.ListLeadsInput) (*ports.ListLeadsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListLeadsFilter{
		Status: input.Status,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	}
	switch input.Role {
	case domain.RoleMarketer:
		filter.MarketerID = input.UserID
	case domain.RoleFactory:
		filter.FactoryName = input.FactoryName
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListLeadsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateStatus moves a lead along its lifecycle. Only factories and admins
// work leads; a factory may only touch leads on its own products, and the
// transition must be valid from the current status.
func (s *LeadService) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, role domain.Role, factoryName string) (*domain.Lead, error) {
	if role != domain.RoleFactory && role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleFactory && lead.FactoryName != factoryName {
		// Same masking as Get: another factory's lead looks like no lead at all.
		return nil, domain.ErrLeadNotFound
	}
	if !lead.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	lead.Status = status
	lead.UpdatedAt = time.Now().UTC()

	s.notify(ctx, lead)
	s.log.Info().Str("lead_id", id).Str("status", string(status)).Msg("lead status updated")
	return lead, nil
}

func (s *LeadService) notify(ctx context.Context, lead *domain.Lead) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, ports.LeadEvent{
		LeadID:      lead.ID,
		ClientName:  lead.ClientName,
		FactoryName: lead.FactoryName,
		Status:      lead.Status,
		Timestamp:   lead.UpdatedAt,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("lead_id", lead.ID).Msg("lead notification failed")
	}
}

func visibleTo(lead *domain.Lead, role domain.Role, userID, factoryName string) bool {
	switch role {
	case domain.RoleMarketer:
		return lead.MarketerID == userID
	case domain.RoleFactory:
		return lead.FactoryName == factoryName
	default:
		return true
	}
}
