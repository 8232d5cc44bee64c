package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/qalab/employee-directory/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, 30*time.Minute, 7*24*time.Hour), mr
}

func TestSessionStore_CreateResolveRevoke(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	viewer := domain.Identity{Username: "viewer", Role: domain.RoleViewer}

	token, ttl, err := store.Create(ctx, viewer, false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ttl != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", ttl)
	}
	if got := mr.TTL("session:" + token); got != 30*time.Minute {
		t.Fatalf("expected redis ttl 30m, got %s", got)
	}

	id, ok, err := store.Resolve(ctx, token)
	if err != nil || !ok || id != viewer {
		t.Fatalf("resolve: %+v %v %v", id, ok, err)
	}

	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
	if _, ok, _ := store.Resolve(ctx, token); ok {
		t.Fatalf("revoked session still resolves")
	}
}

func TestSessionStore_RedisExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, _, err := store.Create(ctx, domain.Identity{Username: "admin", Role: domain.RoleAdmin}, false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(31 * time.Minute)

	if _, ok, err := store.Resolve(ctx, token); ok || err != nil {
		t.Fatalf("expected expired session, got ok=%v err=%v", ok, err)
	}
}

func TestSessionStore_RememberUsesLongTTL(t *testing.T) {
	store, mr := newTestStore(t)

	token, ttl, err := store.Create(context.Background(), domain.Identity{Username: "admin", Role: domain.RoleAdmin}, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ttl != 7*24*time.Hour || mr.TTL("session:"+token) != 7*24*time.Hour {
		t.Fatalf("expected 7d ttl, got %s / %s", ttl, mr.TTL("session:"+token))
	}
}

func TestSessionStore_StaleExpiresAtIsRemoved(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, _, err := store.Create(ctx, domain.Identity{Username: "admin", Role: domain.RoleAdmin}, false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.now = func() time.Time { return time.Now().Add(time.Hour) }

	if _, ok, _ := store.Resolve(ctx, token); ok {
		t.Fatalf("expected session past expiresAt to be rejected")
	}
	if mr.Exists("session:" + token) {
		t.Fatalf("expected stale key to be deleted")
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	if _, ok, err := store.Resolve(context.Background(), "missing"); ok || err != nil {
		t.Fatalf("expected absent without error, got ok=%v err=%v", ok, err)
	}
}

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	hc := NewHealthCheck(client)
	if err := hc.Check(context.Background()); err != nil {
		t.Fatalf("expected healthy redis, got %v", err)
	}

	mr.Close()
	if err := hc.Check(context.Background()); err == nil {
		t.Fatalf("expected failure once redis is gone")
	}
}
