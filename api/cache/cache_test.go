package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/rotisserie/eris"
)

var (
	_ api.CacheAdaptor = (*Memory)(nil)
	_ api.CacheAdaptor = (*Redis)(nil)
)

func TestMemoryExpiry(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC)
	m := newMemory(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	})
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	if value, err := m.Get(ctx, "k"); err != nil || value != "v" {
		t.Errorf("Get=%q,%v", value, err)
	}

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()
	if _, err := m.Get(ctx, "k"); !eris.Is(err, ErrCacheMiss) {
		t.Errorf("expired Get err=%v, expected ErrCacheMiss", err)
	}

	m.removeExpired()
	if m.Len() != 0 {
		t.Errorf("Len()=%d after sweep", m.Len())
	}
}

func TestMemoryCloseTwice(t *testing.T) {
	m := NewMemory()
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	r, err := NewRedis(ctx, RedisOptions{Addr: addr, KeyPrefix: "fortnite-api-test:"})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := r.Get(ctx, "missing"); !eris.Is(err, ErrCacheMiss) {
		t.Errorf("Get(missing) err=%v", err)
	}
	if err := r.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	if value, err := r.Get(ctx, "k"); err != nil || value != "v" {
		t.Errorf("Get=%q,%v", value, err)
	}
}
