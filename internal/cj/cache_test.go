package cj

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCache_GetSet(t *testing.T) {
	t.Parallel()

	c := NewSearchCache()
	page := &ProductPage{Total: 3, PageNum: 1}

	_, ok := c.Get("k1")
	assert.False(t, ok)

	c.Set("k1", page)
	got, ok := c.Get("k1")
	require.True(t, ok)
	assert.Same(t, page, got)
	assert.Equal(t, 1, c.Len())
}

func TestSearchCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewSearchCache(
		WithCacheTTL(time.Minute),
		WithCacheNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}),
	)

	c.Set("k1", &ProductPage{Total: 1})

	_, ok := c.Get("k1")
	assert.True(t, ok, "fresh entry should hit")

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	_, ok = c.Get("k1")
	assert.False(t, ok, "expired entry should miss")
	assert.Equal(t, 0, c.Len(), "expired entry should be removed on access")
}

func TestSearchCache_BoundedEviction(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewSearchCache(
		WithCacheMaxEntries(2),
		WithCacheNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}),
	)

	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	c.Set("oldest", &ProductPage{Total: 1})
	advance(time.Second)
	c.Set("middle", &ProductPage{Total: 2})
	advance(time.Second)
	c.Set("newest", &ProductPage{Total: 3})

	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("oldest")
	assert.False(t, ok, "oldest entry should have been evicted")

	_, ok = c.Get("middle")
	assert.True(t, ok)
	_, ok = c.Get("newest")
	assert.True(t, ok)
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	base := ProductFilter{Query: "bottle", PageNum: 1, PageSize: 20}

	assert.Equal(t, cacheKey(base), cacheKey(base), "same filter should produce the same key")

	variants := []ProductFilter{
		{Query: "earbuds", PageNum: 1, PageSize: 20},
		{Query: "bottle", PageNum: 2, PageSize: 20},
		{Query: "bottle", PageNum: 1, PageSize: 50},
		{Query: "bottle", CategoryID: "cat-1", PageNum: 1, PageSize: 20},
		{Query: "bottle", SKU: "SKU-1", PageNum: 1, PageSize: 20},
	}
	seen := map[string]bool{cacheKey(base): true}
	for _, f := range variants {
		key := cacheKey(f)
		assert.False(t, seen[key], "filter %+v collided with a previous key", f)
		seen[key] = true
	}
}
