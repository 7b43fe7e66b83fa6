// Package cache provides a small TTL cache for read-mostly lookups, used
// to keep gym branding reads off the database on every portal bootstrap.
package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

// CleanupInterval is how often expired entries are removed.
const CleanupInterval = 30 * time.Second

// Cache wraps robfig/go-cache with per-instance default TTL. A zero TTL
// disables the cache entirely, which keeps the disabled path branch-free
// at the call sites.
type Cache struct {
	store *cache.Cache
	ttl   time.Duration
}

// New creates an in-memory cache. If ttl is 0, caching is disabled.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: cache.New(0, CleanupInterval),
		ttl:   ttl,
	}
}

// Set stores a value under the default TTL. No-op when disabled.
func (c *Cache) Set(key string, value interface{}) {
	if c.ttl == 0 {
		return
	}

	c.store.Set(key, value, c.ttl)
}

// Get returns the value and true when present and unexpired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.store.Flush()
}
