// Package cache provides the process-lifetime response cache. Successful
// fetches are memoized by request key and never evicted; failed fetches are
// not stored, so the next call with the same key retries the network.
package cache

import (
	"fmt"
	"log/slog"

	gocache "github.com/patrickmn/go-cache"
)

// Key prefixes for catalog requests
const (
	prefixShowPage = "shows:page:"
)

// ShowPageKey returns the cache key for one catalog page.
func ShowPageKey(page int) string {
	return fmt.Sprintf("%s%d", prefixShowPage, page)
}

// ResponseCache memoizes successful fetches for the life of the process.
type ResponseCache struct {
	store  *gocache.Cache
	logger *slog.Logger
}

// New creates an empty response cache. No expiry, no janitor: the dataset
// is read-only and bounded, so entries stay valid for the whole session.
func New(logger *slog.Logger) *ResponseCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResponseCache{
		store:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

// Len returns the number of cached responses.
func (c *ResponseCache) Len() int {
	return c.store.ItemCount()
}

// GetOrFetch returns the cached payload for key, or runs fetch and stores
// its result on success. A fetch error is returned as-is and leaves the
// cache untouched.
func GetOrFetch[T any](c *ResponseCache, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.store.Get(key); ok {
		c.logger.Debug("cache hit", "key", key)
		return v.(T), nil
	}

	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	c.store.Set(key, v, gocache.NoExpiration)
	return v, nil
}
