package ports

import (
	"context"
	"time"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// SessionStore owns the lifecycle of login sessions.
type SessionStore interface {
	// Create issues a new opaque token for identity. The returned ttl is the
	// lifetime applied to the session (long when remember is set).
	Create(ctx context.Context, identity domain.Identity, remember bool) (token string, ttl time.Duration, err error)
	// Resolve returns the identity bound to token. Expired entries are removed
	// on lookup and reported as absent.
	Resolve(ctx context.Context, token string) (domain.Identity, bool, error)
	// Revoke removes token. Revoking an unknown token is not an error.
	Revoke(ctx context.Context, token string) error
}
