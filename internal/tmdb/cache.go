package tmdb

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value   any
	expires time.Time
}

// cache memoizes detail lookups so repeated imports of the same record
// don't hammer the TMDB API.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (c *cache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:   value,
		expires: time.Now().Add(c.ttl),
	}
}

func cacheGet[T any](c *cache, key string) (*T, bool) {
	v, ok := c.get(key)
	if !ok {
		return nil, false
	}
	typed, ok := v.(*T)
	return typed, ok
}
