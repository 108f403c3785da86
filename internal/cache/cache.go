// Package cache provides a bounded, TTL-based response cache keyed by
// deterministic content fingerprints.
package cache

import (
	"sort"
	"sync"
	"time"
)

// Default cache parameters.
const (
	DefaultTTL     = 24 * time.Hour
	DefaultMaxSize = 100
)

type entry[T any] struct {
	createdAt time.Time
	payload   T
}

// Cache is a thread-safe bounded cache with lazy TTL expiry. Stale entries
// are skipped on read rather than proactively purged; capacity eviction
// removes them along with the oldest live entries.
type Cache[T any] struct {
	entries map[string]entry[T]
	now     func() time.Time
	ttl     time.Duration
	maxSize int
	mu      sync.RWMutex
}

// New creates a cache with the given TTL and maximum entry count. Zero
// values fall back to the defaults.
func New[T any](ttl time.Duration, maxSize int) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get retrieves a payload if present and not expired. An entry past its TTL
// is a miss even while physically present.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	e, exists := c.entries[key]
	if !exists {
		return zero, false
	}

	if c.now().Sub(e.createdAt) > c.ttl {
		return zero, false
	}

	return e.payload, true
}

// Put stores a payload and evicts oldest-first if the cache is over
// capacity.
func (c *Cache[T]) Put(key string, payload T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{
		payload:   payload,
		createdAt: c.now(),
	}

	c.evictLocked()
}

// evictLocked drops expired entries, then the oldest-by-createdAt entries
// until size fits. Caller must hold the write lock.
func (c *Cache[T]) evictLocked() {
	if len(c.entries) <= c.maxSize {
		return
	}

	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.createdAt) > c.ttl {
			delete(c.entries, key)
		}
	}

	if len(c.entries) <= c.maxSize {
		return
	}

	type aged struct {
		key       string
		createdAt time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, createdAt: e.createdAt})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].createdAt.Before(all[j].createdAt)
	})

	for _, a := range all {
		if len(c.entries) <= c.maxSize {
			break
		}
		delete(c.entries, a.key)
	}
}

// Size returns the number of physically present entries, expired included.
func (c *Cache[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}
