package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/farescout/backend/internal/domain"
	"github.com/farescout/backend/internal/infrastructure/observability"
)

// cleanupInterval is how often expired entries are swept out.
const cleanupInterval = 10 * time.Minute

type memoryEntry struct {
	value     interface{}
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryCache implements the cache port on a mutex-guarded map with TTL.
// Values round-trip through JSON on Set so Get returns the same decoded shape
// a redis-backed cache would.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache creates an in-memory cache and starts its expiry sweeper.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{entries: make(map[string]memoryEntry)}
	go c.sweep()
	return c
}

// Get retrieves a value. Expired entries count as misses.
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		observability.ObserveCache("memory", "miss")
		return nil, domain.ErrCacheMiss
	}
	observability.ObserveCache("memory", "hit")
	return entry.value, nil
}

// Set stores a value with a TTL, replacing any existing entry.
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var stored interface{}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{value: stored, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()

	observability.ObserveCache("memory", "set")
	return nil
}

// Delete removes a key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	observability.ObserveCache("memory", "del")
	return nil
}

// Exists reports whether a key is present and not expired.
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !entry.expired(time.Now()), nil
}

// sweep periodically drops expired entries so long-lived processes do not
// accumulate dead keys.
func (c *MemoryCache) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if entry.expired(now) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
