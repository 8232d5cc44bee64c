package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/api/metrics"
	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

// AuthService implements login, logout and session resolution against a
// fixed user directory.
type AuthService struct {
	users    map[string]domain.User
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users []domain.User, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	byName := make(map[string]domain.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &AuthService{users: byName, sessions: sessions, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string, remember bool) (*ports.LoginResult, error) {
	user, ok := s.users[username]
	if !ok || username == "" || user.Password != password {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		s.logger.Info().Str("username", username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	identity := domain.Identity{Username: user.Username, Role: user.Role}
	token, ttl, err := s.sessions.Create(ctx, identity, remember)
	if err != nil {
		return nil, fmt.Errorf("login: create session: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Bool("remember", remember).Msg("login accepted")

	return &ports.LoginResult{Token: token, TTL: ttl, Remember: remember, Identity: identity}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) Identify(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, nil
	}
	identity, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &identity, nil
}
