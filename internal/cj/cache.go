package cj

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultCacheTTL        = 5 * time.Minute
	defaultCacheMaxEntries = 512
)

// cacheEntry pairs a cached page with its insertion time.
type cacheEntry struct {
	page       *ProductPage
	insertedAt time.Time
}

// SearchCache memoizes product search pages keyed by the normalized
// filter. Entries expire after a fixed TTL; eviction happens explicitly
// on access and on insert rather than as a side effect elsewhere. The map
// is bounded: when full, the oldest entry is dropped.
type SearchCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]cacheEntry
	nowFunc func() time.Time
}

// CacheOption configures the SearchCache.
type CacheOption func(*SearchCache)

// WithCacheTTL overrides the default entry lifetime.
func WithCacheTTL(d time.Duration) CacheOption {
	return func(c *SearchCache) {
		c.ttl = d
	}
}

// WithCacheMaxEntries overrides the default bound.
func WithCacheMaxEntries(n int) CacheOption {
	return func(c *SearchCache) {
		c.max = n
	}
}

// WithCacheNowFunc overrides the time function for testing.
func WithCacheNowFunc(f func() time.Time) CacheOption {
	return func(c *SearchCache) {
		c.nowFunc = f
	}
}

// NewSearchCache creates a SearchCache.
func NewSearchCache(opts ...CacheOption) *SearchCache {
	c := &SearchCache{
		ttl:     defaultCacheTTL,
		max:     defaultCacheMaxEntries,
		entries: make(map[string]cacheEntry),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached page for the key, expiring it first if its TTL
// has elapsed.
func (c *SearchCache) Get(key string) (*ProductPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.nowFunc().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.page, true
}

// Set stores a page under the key, evicting expired entries and, if the
// cache is still full, the oldest entry.
func (c *SearchCache) Set(key string, page *ProductPage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFunc()
	for k, e := range c.entries {
		if now.Sub(e.insertedAt) > c.ttl {
			delete(c.entries, k)
		}
	}

	if len(c.entries) >= c.max {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.insertedAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = cacheEntry{page: page, insertedAt: now}
}

// Len returns the number of live entries, for tests and introspection.
func (c *SearchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey builds a stable key from a product filter.
func cacheKey(f ProductFilter) string {
	parts := []string{
		"q=" + f.Query,
		"cat=" + f.CategoryID,
		"sku=" + f.SKU,
		"page=" + strconv.Itoa(f.PageNum),
		"size=" + strconv.Itoa(f.PageSize),
	}
	sort.Strings(parts)
	return strings.Join(parts, "&")
}
