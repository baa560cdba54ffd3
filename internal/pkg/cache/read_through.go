package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// ReadThrough serves values from a Manager and falls back to a loader on a
// miss. Concurrent misses for the same key share a single loader call.
type ReadThrough[V any] struct {
	cache  Manager[V]
	load   func(ctx context.Context, key string) (V, error)
	ttl    time.Duration
	flight singleflight.Group
}

// NewReadThrough creates a read-through cache. Values are kept for ttl.
func NewReadThrough[V any](cache Manager[V], load func(ctx context.Context, key string) (V, error), ttl time.Duration) *ReadThrough[V] {
	return &ReadThrough[V]{
		cache: cache,
		load:  load,
		ttl:   ttl,
	}
}

// Get returns the cached value for key, loading and caching it on a miss.
// Loader errors are returned and nothing is cached.
func (r *ReadThrough[V]) Get(ctx context.Context, key string) (V, error) {
	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	v, err, _ := r.flight.Do(key, func() (interface{}, error) {
		value, err := r.load(ctx, key)
		if err != nil {
			return value, err
		}
		r.cache.Set(ctx, key, value, r.ttl)
		return value, nil
	})
	value, _ := v.(V)
	return value, err
}

// Invalidate drops key so the next Get reloads it
func (r *ReadThrough[V]) Invalidate(ctx context.Context, key string) {
	r.cache.Delete(ctx, key)
}
