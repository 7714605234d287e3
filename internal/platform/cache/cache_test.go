package cache

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	if _, ok, _ := m.Get(ctx, "missing"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}

	if err := m.Set(ctx, "k", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v1" {
		t.Fatalf("Get = %q, %v, %v, want v1, true, nil", got, ok, err)
	}

	// Mutating the returned slice must not affect the cache.
	got[0] = 'x'
	again, _, _ := m.Get(ctx, "k")
	if string(again) != "v1" {
		t.Errorf("cached value changed through returned slice: %q", again)
	}
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, "k", []byte("v"), 10*time.Second)

	now = now.Add(9 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("entry expired early")
	}

	now = now.Add(time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("entry still present at expiry")
	}
	if m.size() != 0 {
		t.Errorf("size() = %d, want expired entry removed", m.size())
	}
}

func TestMemory_NonPositiveTTLStoresNothing(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	_ = m.Set(context.Background(), "k", []byte("v"), 0)
	if m.size() != 0 {
		t.Errorf("size() = %d, want 0", m.size())
	}
}

func TestMemory_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	for i := range maxMemoryEntries {
		// Entry 0 expires first.
		_ = m.Set(ctx, "k"+strconv.Itoa(i), []byte("v"), time.Duration(i+1)*time.Minute)
	}
	_ = m.Set(ctx, "overflow", []byte("v"), time.Hour)

	if m.size() != maxMemoryEntries {
		t.Errorf("size() = %d, want %d", m.size(), maxMemoryEntries)
	}
	if _, ok, _ := m.Get(ctx, "k0"); ok {
		t.Error("entry closest to expiry was not evicted")
	}
	if _, ok, _ := m.Get(ctx, "overflow"); !ok {
		t.Error("new entry missing after eviction")
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var c Noop
	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("Get = _, %v, %v, want miss", ok, err)
	}
}

func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedis_ErrorsWhenUnreachable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewRedis(unreachableRedis(), "test:")
	t.Cleanup(func() { _ = r.Close() })

	if _, ok, err := r.Get(ctx, "k"); err == nil || ok {
		t.Errorf("Get = _, %v, %v, want error", ok, err)
	}
	if err := r.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("Set returned nil error for unreachable server")
	}
	if err := r.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck returned nil error for unreachable server")
	}
	if err := r.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Errorf("Set with zero ttl = %v, want nil without contacting the server", err)
	}
}

func TestNew_SelectsDriver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.CacheConfig
		want string
	}{
		{name: "memory", cfg: config.CacheConfig{Driver: DriverMemory}, want: DriverMemory},
		{name: "none", cfg: config.CacheConfig{Driver: DriverNone}, want: DriverNone},
		{
			name: "unreachable redis falls back to memory",
			cfg:  config.CacheConfig{Driver: DriverRedis, Redis: config.RedisConfig{Addr: "127.0.0.1:1"}},
			want: DriverMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(context.Background(), &tt.cfg, testLogger())
			if got := Kind(c); got != tt.want {
				t.Errorf("Kind(New()) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_LogsFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.CacheConfig{Driver: DriverRedis, Redis: config.RedisConfig{Addr: "127.0.0.1:1"}}
	New(context.Background(), &cfg, logger)

	if !bytes.Contains(buf.Bytes(), []byte("falling back to memory cache")) {
		t.Errorf("log output = %q, want fallback warning", buf.String())
	}
}
