// Package cachemanager provides a generic in-memory cache plus a
// read-through wrapper. The clipboard service uses it to front its durable
// store so repeated reads after a reload stay in memory.
package cachemanager

import (
	"context"
	"time"
)

// NoExpiration marks a cache entry that never expires.
const NoExpiration time.Duration = -1

// CacheManager is the generic cache contract.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
