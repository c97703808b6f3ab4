package service

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// CampaignService serves a marketer's campaigns from an in-memory fixture
// set rebuilt at startup. Campaigns carry no cross-request invariants, so
// no durable store backs them.
type CampaignService struct {
	campaigns []*domain.Campaign
}

func NewCampaignService(campaigns []*domain.Campaign) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

// List returns campaigns, optionally filtered by status.
func (s *CampaignService) List(_ context.Context, status string) []*domain.Campaign {
	if status == "" {
		return s.campaigns
	}
	out := make([]*domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if string(c.Status) == status {
			out = append(out, c)
		}
	}
	return out
}

func (s *CampaignService) Get(_ context.Context, id string) (*domain.Campaign, error) {
	for _, c := range s.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCampaignNotFound
}
