package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestCacheGetPut(t *testing.T) {
	c := New[string](time.Hour, 10)

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Put("key", "value")

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, c.Size())
}

func TestCacheOverwrite(t *testing.T) {
	c := New[int](time.Hour, 10)

	c.Put("key", 1)
	c.Put("key", 2)

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Size())
}

func TestCacheTTLExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New[string](time.Hour, 10)
	c.now = clock.now

	c.Put("key", "value")

	clock.advance(time.Hour)
	_, found := c.Get("key")
	assert.True(t, found, "an entry exactly at its TTL is still live")

	clock.advance(time.Millisecond)
	_, found = c.Get("key")
	assert.False(t, found, "an entry past its TTL is a miss")
	assert.Equal(t, 1, c.Size(), "expiry is lazy; the entry stays until eviction")
}

func TestCacheCapacityEviction(t *testing.T) {
	clock := newFakeClock()
	c := New[int](time.Hour, 3)
	c.now = clock.now

	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
		clock.advance(time.Second)
	}

	assert.Equal(t, 3, c.Size())

	for i := 0; i < 2; i++ {
		_, found := c.Get(fmt.Sprintf("key-%d", i))
		assert.False(t, found, "oldest entries are evicted first")
	}
	for i := 2; i < 5; i++ {
		got, found := c.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, found)
		assert.Equal(t, i, got)
	}
}

func TestCacheEvictionPrefersExpired(t *testing.T) {
	clock := newFakeClock()
	c := New[int](time.Minute, 2)
	c.now = clock.now

	c.Put("stale", 0)
	clock.advance(2 * time.Minute)

	c.Put("a", 1)
	clock.advance(time.Second)
	c.Put("b", 2)

	assert.Equal(t, 2, c.Size())

	_, found := c.Get("stale")
	assert.False(t, found)

	for key, want := range map[string]int{"a": 1, "b": 2} {
		got, found := c.Get(key)
		assert.True(t, found, "live entry %s should survive eviction", key)
		assert.Equal(t, want, got)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string](time.Hour, 10)
	c.Put("a", "1")
	c.Put("b", "2")

	c.Clear()

	assert.Equal(t, 0, c.Size())
	_, found := c.Get("a")
	assert.False(t, found)
}

func TestCacheDefaults(t *testing.T) {
	c := New[string](0, 0)
	assert.Equal(t, DefaultTTL, c.ttl)
	assert.Equal(t, DefaultMaxSize, c.maxSize)
}
