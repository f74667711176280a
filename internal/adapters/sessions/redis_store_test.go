package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/zineb0v0/viaCargo/internal/ports"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWithClient(client, time.Hour), mr
}

func TestPutGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := ports.Session{
		Token:         "tok-1",
		Email:         "admin@viacargo.local",
		BackendCookie: "session=deadbeef",
		Page:          "routes",
		ExpandedRun:   "run-3",
	}
	if err := store.Put(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != session {
		t.Fatalf("round trip changed the session: %+v != %+v", got, session)
	}
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	_, err = store.Get(context.Background(), "")
	if !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, ports.Session{Token: "tok-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "tok-1")
	if !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestPutRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, ports.Session{Token: "tok-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(30 * time.Minute)
	if err := store.Put(ctx, ports.Session{Token: "tok-1", Page: "stock"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(45 * time.Minute)

	got, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("expected session to survive refresh, got %v", err)
	}
	if got.Page != "stock" {
		t.Fatalf("expected refreshed session, got %+v", got)
	}
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, ports.Session{Token: "tok-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "tok-1"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("expected deletion, got %v", err)
	}

	// Unknown tokens delete cleanly.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPutRequiresToken(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.Put(context.Background(), ports.Session{}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNewTokenIsUnique(t *testing.T) {
	a, err := NewToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatal("tokens must not repeat")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}
