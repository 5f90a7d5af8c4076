package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache consults the cache first and falls back to a loader
// function on a miss, caching the loaded value. The clipboard service
// layers this over its durable store.
type ReadThroughCache[K ~string, V any] struct {
	cache           CacheManager[K, V]
	load            func(ctx context.Context, key K) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K ~string, V any](
	cache CacheManager[K, V],
	load func(ctx context.Context, key K) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache:           cache,
		load:            load,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for key, loading and caching it on a miss.
func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.load(ctx, key)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.load(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)

	return value, nil
}

// Put writes straight through to the cache, replacing any cached value.
func (r *ReadThroughCache[K, V]) Put(ctx context.Context, key K, value V, ttl time.Duration) {
	if r.shouldSkipCache {
		return
	}
	r.cache.Set(ctx, key, value, ttl)
}

// Invalidate drops the cached value for key so the next Get reloads.
func (r *ReadThroughCache[K, V]) Invalidate(ctx context.Context, key K) error {
	return r.cache.Delete(ctx, key)
}
