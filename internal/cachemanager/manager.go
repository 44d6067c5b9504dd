// Package cachemanager provides TTL caches keyed by string-like keys and a
// read-through wrapper that loads on miss.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values of V under keys of K.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
