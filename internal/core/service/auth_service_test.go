package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/core/domain"
)

var discardLogger = zerolog.Nop()

type stubSessionStore struct {
	sessions  map[string]domain.Identity
	remember  map[string]bool
	next      int
	createErr error
	revoked   []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		sessions: make(map[string]domain.Identity),
		remember: make(map[string]bool),
	}
}

func (s *stubSessionStore) Create(_ context.Context, identity domain.Identity, remember bool) (string, time.Duration, error) {
	if s.createErr != nil {
		return "", 0, s.createErr
	}
	s.next++
	token := "tok-" + string(rune('a'+s.next))
	s.sessions[token] = identity
	s.remember[token] = remember
	ttl := 30 * time.Minute
	if remember {
		ttl = 7 * 24 * time.Hour
	}
	return token, ttl, nil
}

func (s *stubSessionStore) Resolve(_ context.Context, token string) (domain.Identity, bool, error) {
	id, ok := s.sessions[token]
	return id, ok, nil
}

func (s *stubSessionStore) Revoke(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	delete(s.sessions, token)
	return nil
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(domain.DefaultUsers(), store, discardLogger)

	res, err := svc.Login(context.Background(), "admin", "admin123", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.Identity.Username != "admin" || res.Identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", res.Identity)
	}
	if res.TTL != 30*time.Minute || res.Remember {
		t.Fatalf("expected short session, got ttl=%s remember=%v", res.TTL, res.Remember)
	}
	if store.sessions[res.Token] != res.Identity {
		t.Fatalf("session not stored for token %q", res.Token)
	}
}

func TestAuthService_Login_Remember(t *testing.T) {
	svc := NewAuthService(domain.DefaultUsers(), newStubSessionStore(), discardLogger)

	res, err := svc.Login(context.Background(), "viewer", "viewer123", true)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.TTL != 7*24*time.Hour || !res.Remember {
		t.Fatalf("expected remembered session, got ttl=%s remember=%v", res.TTL, res.Remember)
	}
	if res.Identity.Role != domain.RoleViewer {
		t.Fatalf("expected viewer role, got %s", res.Identity.Role)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(domain.DefaultUsers(), newStubSessionStore(), discardLogger)

	cases := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"ghost", "admin123"},
		{"", ""},
		{"Admin", "admin123"},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.user, tc.pass, false); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s/%s: expected ErrInvalidCredentials, got %v", tc.user, tc.pass, err)
		}
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	store := newStubSessionStore()
	store.createErr = errors.New("redis down")
	svc := NewAuthService(domain.DefaultUsers(), store, discardLogger)

	_, err := svc.Login(context.Background(), "admin", "admin123", false)
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestAuthService_IdentifyAndLogout(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(domain.DefaultUsers(), store, discardLogger)

	res, err := svc.Login(context.Background(), "admin", "admin123", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	id, err := svc.Identify(context.Background(), res.Token)
	if err != nil || id == nil || id.Username != "admin" {
		t.Fatalf("expected admin identity, got %+v (err %v)", id, err)
	}

	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	id, err = svc.Identify(context.Background(), res.Token)
	if err != nil || id != nil {
		t.Fatalf("expected no identity after logout, got %+v (err %v)", id, err)
	}

	// Logging out twice, or without a cookie, is fine.
	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty logout failed: %v", err)
	}
	if len(store.revoked) != 2 {
		t.Fatalf("expected 2 revocations, got %d", len(store.revoked))
	}
}

func TestAuthService_Identify_EmptyToken(t *testing.T) {
	svc := NewAuthService(domain.DefaultUsers(), newStubSessionStore(), discardLogger)

	id, err := svc.Identify(context.Background(), "")
	if err != nil || id != nil {
		t.Fatalf("expected nil identity, got %+v (err %v)", id, err)
	}
}
