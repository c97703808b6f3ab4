package domain

import "errors"

// CampaignStatus represents the running state of a marketing campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPending   CampaignStatus = "pending"
	CampaignCompleted CampaignStatus = "completed"
	CampaignDraft     CampaignStatus = "draft"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// Campaign is a marketer's promotion effort for a set of products.
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Target      string         `json:"target"`
	Leads       int            `json:"leads"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Products    []string       `json:"products"`
	Performance int            `json:"performance"`
}
