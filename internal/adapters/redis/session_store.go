// Package redis provides a Redis-backed session store for deployments where
// the front end runs on a shared or ephemeral host and local files do not
// survive the process. The store holds the single active session under a
// fixed key, matching the one-session-per-client-process model.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// DefaultKey is the fixed key the active session is stored under.
const DefaultKey = "dms:session"

// SessionStore is a Redis-based session store.
type SessionStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a Redis session store with the default key and no
// expiry (the session lives until logout or forced teardown).
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, key: DefaultKey}
}

// NewSessionStoreWithOptions creates a Redis session store with a custom key
// and TTL. A zero TTL disables expiry.
func NewSessionStoreWithOptions(client redis.UniversalClient, key string, ttl time.Duration) *SessionStore {
	if key == "" {
		key = DefaultKey
	}
	return &SessionStore{client: client, key: key, ttl: ttl}
}

// Save persists the session, replacing any prior one under the fixed key.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

// Load returns the persisted session, or ports.ErrNoSession when the key is
// absent. A payload that fails to decode also counts as no session, so that
// restore fails closed.
func (s *SessionStore) Load(ctx context.Context) (domainauth.Session, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ports.ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, ports.ErrNoSession
	}
	if sess.Token == "" || sess.Actor.ID == 0 {
		return domainauth.Session{}, ports.ErrNoSession
	}
	return sess, nil
}

// Clear removes the persisted session. Deleting an absent key is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
