package ports

import (
	"context"
	"time"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// LeadEvent is the DTO handed to the notification pipeline whenever a lead
// is submitted or changes status.
type LeadEvent struct {
	LeadID      string
	ClientName  string
	FactoryName string
	Status      domain.LeadStatus
	Timestamp   time.Time
}

// Notifier delivers lead events to interested parties.
type Notifier interface {
	Notify(ctx context.Context, event LeadEvent) error
}
