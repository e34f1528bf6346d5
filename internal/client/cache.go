package client

import (
	"fmt"
	"sync"
)

// Entity names a cached entity type. Each entity has its own invalidation
// generation.
type Entity string

const (
	EntityMovies   Entity = "movies"
	EntityShows    Entity = "shows"
	EntitySeasons  Entity = "seasons"
	EntityEpisodes Entity = "episodes"
	EntityUsers    Entity = "users"
)

// adminRead reports whether reads of this entity require the credential.
// Movie and show browsing is public; everything else is admin-only.
func (e Entity) adminRead() bool {
	return e != EntityMovies && e != EntityShows
}

// Key identifies one cached query: a list signature or a detail fetch.
type Key struct {
	Entity Entity
	ID     int64 // detail fetches; 0 for lists
	Page   int
	Limit  int
	Search string
	Parent int64
}

func listKey(ent Entity, opts ListOptions) Key {
	return Key{Entity: ent, Page: opts.Page, Limit: opts.Limit, Search: opts.Search, Parent: opts.ParentID}
}

func itemKey(ent Entity, id int64) Key {
	return Key{Entity: ent, ID: id}
}

func (k Key) String() string {
	if k.ID != 0 {
		return fmt.Sprintf("%s/%d", k.Entity, k.ID)
	}
	return fmt.Sprintf("%s?page=%d&limit=%d&search=%q&parent=%d", k.Entity, k.Page, k.Limit, k.Search, k.Parent)
}

type entry struct {
	value any
	gen   uint64
}

// Cache holds the last successful result per query key, tagged with the
// entity's write generation at store time. A successful mutation bumps the
// generation, which marks every cached query for that entity stale without
// discarding it: callers can keep displaying the stale page while the
// refetch is in flight (stale-while-revalidate), but a fresh lookup after
// a confirmed mutation always misses, forcing a refetch that reflects the
// write.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	gens    map[Entity]uint64
}

// NewCache creates an empty query cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[Key]entry),
		gens:    make(map[Entity]uint64),
	}
}

// Store records the result for a query key at the entity's current
// generation.
func (c *Cache) Store(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, gen: c.gens[key.Entity]}
}

// Lookup returns the cached value for a key. stale reports whether a write
// to the entity has happened since the value was stored.
func (c *Cache) Lookup(key Key) (value any, stale, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	return e.value, e.gen != c.gens[key.Entity], true
}

// Invalidate marks every cached query for the entity stale.
func (c *Cache) Invalidate(ent Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[ent]++
}

// Drop removes a single cached entry entirely, used for detail entries of
// updated or deleted ids where even stale display would be wrong.
func (c *Cache) Drop(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
