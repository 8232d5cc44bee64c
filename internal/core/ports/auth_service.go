package ports

import (
	"context"
	"time"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token    string
	TTL      time.Duration
	Remember bool
	Identity domain.Identity
}

type AuthService interface {
	Login(ctx context.Context, username, password string, remember bool) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	// Identify resolves a session token. A nil identity with a nil error means
	// the token is unknown or expired.
	Identify(ctx context.Context, token string) (*domain.Identity, error)
}
