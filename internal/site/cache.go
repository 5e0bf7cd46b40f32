package site

import (
	"sync"
	"time"

	"github.com/dgallion1/docsite/internal/content"
)

type cacheEntry struct {
	page     *content.Page
	storedAt time.Time
}

// Cache is a thread-safe in-memory rendered page cache with TTL eviction.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache) Put(route string, page *content.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[route] = cacheEntry{page: page, storedAt: c.now()}
}

// Get returns the cached page for route. Expired entries are misses.
func (c *Cache) Get(route string) (*content.Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[route]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, route)
		return nil, false
	}
	return e.page, true
}

// Cleanup removes expired entries.
func (c *Cache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for route, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, route)
		}
	}
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
