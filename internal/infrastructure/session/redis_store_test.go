package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestCreateAndResolve(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "cust-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	customerID, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if customerID != "cust-1" {
		t.Errorf("customer = %q, want cust-1", customerID)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	if _, err := store.Resolve(context.Background(), "no-such-token"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestResolveExpiredToken(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "cust-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Resolve(ctx, token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestResolveSlidesExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "cust-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// touch the session just before it would expire, then cross the
	// original deadline
	mr.FastForward(50 * time.Second)
	if _, err := store.Resolve(ctx, token); err != nil {
		t.Fatalf("Resolve before expiry: %v", err)
	}
	mr.FastForward(50 * time.Second)

	if _, err := store.Resolve(ctx, token); err != nil {
		t.Fatalf("session should have been extended: %v", err)
	}
}

func TestDestroy(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "cust-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, err := store.Resolve(ctx, token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}

	// destroying an unknown token is a no-op
	if err := store.Destroy(ctx, "no-such-token"); err != nil {
		t.Fatalf("Destroy unknown: %v", err)
	}
}
