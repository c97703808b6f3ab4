package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/api/metrics"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

// LogNotifier is the delivery sink for lead events. The platform has no
// outbound channel (mail, push) yet, so delivery means a structured log
// line the factory-facing tooling tails, plus a metric.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, event ports.LeadEvent) error {
	n.log.Info().
		Str("lead_id", event.LeadID).
		Str("client", event.ClientName).
		Str("factory", event.FactoryName).
		Str("status", string(event.Status)).
		Time("at", event.Timestamp).
		Msg("lead event")

	metrics.LeadNotificationsTotal.WithLabelValues(string(event.Status)).Inc()
	return nil
}
