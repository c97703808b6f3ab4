package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// Key format: session:<session_id>, value is the serialized User JSON.
const sessionKeyPrefix = "session:"

// SessionStore persists session Users in Redis. Missing and malformed
// entries both read back as absent; there is no schema version field, so a
// value that fails to decode is simply discarded.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	user, ok := decodeUser(raw)
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *SessionStore) Put(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), raw, ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// decodeUser parses a stored session value. Anything that does not decode
// to a user with an ID and a known role is treated as absent.
func decodeUser(raw []byte) (*domain.User, bool) {
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false
	}
	if user.ID == "" || !domain.ValidRole(user.Role) {
		return nil, false
	}
	return &user, true
}
