package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

var _ ports.Cache = (*Memory)(nil)

// maxMemoryEntries caps the map; when full, expired entries are swept and,
// if that frees nothing, the entry closest to expiry is evicted.
const maxMemoryEntries = 1024

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns a copy of the stored value if present and not expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

// Set stores a copy of value for ttl. Non-positive ttls store nothing.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.entries[key]; !exists && len(m.entries) >= maxMemoryEntries {
		m.evictLocked(now)
	}
	m.entries[key] = memoryEntry{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(ttl),
	}
	return nil
}

// size returns the number of stored entries, including ones not yet swept.
func (m *Memory) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Name and HealthCheck let the memory driver register as a health checker.
func (m *Memory) Name() string { return HealthCheckName }

// HealthCheck always succeeds.
func (m *Memory) HealthCheck(context.Context) error { return nil }

func (m *Memory) evictLocked(now time.Time) {
	var (
		oldestKey string
		oldestAt  time.Time
	)
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
			continue
		}
		if oldestKey == "" || e.expiresAt.Before(oldestAt) {
			oldestKey, oldestAt = k, e.expiresAt
		}
	}
	if len(m.entries) >= maxMemoryEntries && oldestKey != "" {
		delete(m.entries, oldestKey)
	}
}
