package service

import (
	"context"

	"github.com/rs/zerolog"
)

// AnalyticsCache abstracts the aggregate cache (Redis). Get reports whether
// key was present and decoded into dst.
type AnalyticsCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate drops every cached aggregate.
	Invalidate(ctx context.Context) error
}

// SeedLock guards a seed run against a concurrent one in another request or
// process.
type SeedLock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// NopCache never stores anything. It is used when Redis is not configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any) error         { return nil }
func (NopCache) Invalidate(context.Context) error               { return nil }

// NopLock always grants the lock.
type NopLock struct{}

func (NopLock) Acquire(context.Context) (bool, error) { return true, nil }
func (NopLock) Release(context.Context) error         { return nil }

// invalidateAnalytics drops cached aggregates after a write. A failure only
// means stale numbers until the TTL expires, so it is logged, not returned.
func invalidateAnalytics(ctx context.Context, cache AnalyticsCache, log zerolog.Logger) {
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate analytics cache")
	}
}
