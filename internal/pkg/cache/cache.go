// Package cache provides a small generic cache abstraction over go-cache and a
// read-through wrapper that loads values on a miss.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Manager is a typed key/value cache with per-entry TTL
type Manager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
}

// InMemory is a Manager backed by github.com/patrickmn/go-cache
type InMemory[V any] struct {
	name   string
	cache  *gocache.Cache
	logger zerolog.Logger
}

// NewInMemory creates an in-memory cache. name is used in log lines only.
func NewInMemory[V any](name string, defaultExpiration, cleanupInterval time.Duration, logger zerolog.Logger) *InMemory[V] {
	return &InMemory[V]{
		name:   name,
		cache:  gocache.New(defaultExpiration, cleanupInterval),
		logger: logger.With().Str("cache", name).Logger(),
	}
}

// Get retrieves an item from the cache by its key
func (c *InMemory[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V

	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		c.logger.Error().Str("key", key).Msg("Cached value has unexpected type")
		return zero, false
	}

	c.logger.Debug().Str("key", key).Msg("Cache hit")
	return v, true
}

// Set stores a value under key for ttl
func (c *InMemory[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes the given keys
func (c *InMemory[V]) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}

// Flush removes every entry
func (c *InMemory[V]) Flush(ctx context.Context) {
	c.cache.Flush()
}
