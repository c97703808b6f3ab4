package ports

import (
	"context"
	"time"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// SessionStore persists the serialized session User under an opaque session
// ID. It is the only component that touches the session key space.
//
// Get treats missing or malformed entries as absent and returns (nil, nil);
// it only errors on transport failures. Delete is idempotent.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.User, error)
	Put(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
