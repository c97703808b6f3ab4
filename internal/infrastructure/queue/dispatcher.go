package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans lead events out to a fixed set of workers using consistent
// hashing on the lead ID, guaranteeing per-lead notification ordering. It
// implements ports.Notifier by enqueueing; the sink does actual delivery.
type Dispatcher struct {
	workers []chan ports.LeadEvent
	sink    ports.Notifier
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LeadEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LeadEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues an event for the worker responsible for its lead. The
// call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Notify(_ context.Context, event ports.LeadEvent) error {
	d.workers[d.shardIndex(event.LeadID)] <- event
	return nil
}

// shardIndex maps a lead ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(leadID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(leadID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LeadEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Notify(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("lead_id", event.LeadID).
					Int("worker_id", id).
					Msg("lead notification delivery failed")
			}
		}
	}
}
