package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache computes values with fn on a miss and stores the result.
// Errors from fn are returned and never cached.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache  CacheManager[K, V]
	fn     func(ctx context.Context, input I) (V, error)
	bypass bool
}

// NewReadThroughCache wraps cache around fn. With bypass set every call goes
// straight to fn.
func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	bypass bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:  cache,
		fn:     fn,
		bypass: bypass,
	}
}

// Get returns the cached value for key or computes it from input.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.bypass {
		return r.fn(ctx, input)
	}
	if v, ok := r.cache.Get(ctx, key); ok {
		return v, nil
	}
	return r.fill(ctx, key, input, ttl)
}

// GetWithRefresh is Get, but a hit also restarts the entry's TTL.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.bypass {
		return r.fn(ctx, input)
	}
	if v, ok := r.cache.GetWithRefresh(ctx, key, ttl); ok {
		return v, nil
	}
	return r.fill(ctx, key, input, ttl)
}

func (r *ReadThroughCache[K, V, I]) fill(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	v, err := r.fn(ctx, input)
	if err != nil {
		return v, err
	}
	r.cache.Set(ctx, key, v, ttl)
	return v, nil
}
