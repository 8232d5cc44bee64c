// Package session holds the in-process session store.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qalab/employee-directory/internal/core/domain"
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultRememberTTL = 7 * 24 * time.Hour
)

// MemoryStore keeps sessions in a map for the life of the process. Expired
// entries are only removed when they are looked up.
type MemoryStore struct {
	mu          sync.Mutex
	sessions    map[string]domain.Session
	ttl         time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// Option customises a MemoryStore.
type Option func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore returns an empty store. Non-positive lifetimes fall back to
// DefaultTTL and DefaultRememberTTL.
func NewMemoryStore(ttl, rememberTTL time.Duration, opts ...Option) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if rememberTTL <= 0 {
		rememberTTL = DefaultRememberTTL
	}
	s := &MemoryStore{
		sessions:    make(map[string]domain.Session),
		ttl:         ttl,
		rememberTTL: rememberTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, identity domain.Identity, remember bool) (string, time.Duration, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", 0, fmt.Errorf("session token: %w", err)
	}
	ttl := s.ttl
	if remember {
		ttl = s.rememberTTL
	}

	token := id.String()
	s.mu.Lock()
	s.sessions[token] = domain.Session{
		Token:     token,
		Username:  identity.Username,
		Role:      identity.Role,
		ExpiresAt: s.now().Add(ttl),
	}
	s.mu.Unlock()

	return token, ttl, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (domain.Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return domain.Identity{}, false, nil
	}
	if sess.ExpiredAt(s.now()) {
		delete(s.sessions, token)
		return domain.Identity{}, false, nil
	}
	return sess.Identity(), true, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
