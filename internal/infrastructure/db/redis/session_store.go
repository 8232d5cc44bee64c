package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// SessionStore keeps sessions in Redis so they survive an API restart.
// Key format: session:<token>. Redis expiry removes stale keys; the stored
// expiresAt is still checked on read.
type SessionStore struct {
	client      *redis.Client
	ttl         time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl, rememberTTL time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl, rememberTTL: rememberTTL, now: time.Now}
}

func (s *SessionStore) Create(ctx context.Context, identity domain.Identity, remember bool) (string, time.Duration, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", 0, fmt.Errorf("session token: %w", err)
	}
	ttl := s.ttl
	if remember {
		ttl = s.rememberTTL
	}

	sess := domain.Session{
		Token:     id.String(),
		Username:  identity.Username,
		Role:      identity.Role,
		ExpiresAt: s.now().Add(ttl).UTC(),
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", 0, fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.Token), payload, ttl).Err(); err != nil {
		return "", 0, fmt.Errorf("store session: %w", err)
	}
	return sess.Token, ttl, nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (domain.Identity, bool, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("load session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.ExpiredAt(s.now()) {
		_ = s.client.Del(ctx, s.key(token)).Err()
		return domain.Identity{}, false, nil
	}
	return sess.Identity(), true, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
