// Package cache provides the byte-oriented read-through cache drivers behind
// [ports.Cache]: an in-process TTL map, redis, and a no-op driver. The factory
// picks a driver from configuration and falls back to memory when redis is
// unreachable at startup.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

// Driver names accepted in cache.driver.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// HealthCheckName is the name every driver registers its health check under.
const HealthCheckName = "cache"

const pingTimeout = 2 * time.Second

// New builds the cache selected by cfg.Driver. A redis driver that cannot be
// reached at startup degrades to the memory driver with a warning, so a
// missing cache never prevents the service from starting.
func New(ctx context.Context, cfg *config.CacheConfig, logger *slog.Logger) ports.Cache {
	switch cfg.Driver {
	case DriverNone:
		logger.Info("result cache disabled")
		return Noop{}
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unavailable, falling back to memory cache",
				slog.String("addr", cfg.Redis.Addr),
				slog.Int("db", cfg.Redis.DB),
				slog.Any("error", err),
			)
			_ = client.Close()
			return NewMemory()
		}

		logger.Info("using redis result cache", slog.String("addr", cfg.Redis.Addr), slog.Int("db", cfg.Redis.DB))
		return NewRedis(client, cfg.Redis.KeyPrefix)
	default:
		logger.Info("using in-memory result cache")
		return NewMemory()
	}
}

// Noop stores nothing and always misses.
type Noop struct{}

// Get always reports a miss.
func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Kind identifies a driver for logs and metrics.
func Kind(c ports.Cache) string {
	switch c.(type) {
	case *Redis:
		return DriverRedis
	case *Memory:
		return DriverMemory
	case Noop:
		return DriverNone
	default:
		return fmt.Sprintf("%T", c)
	}
}
