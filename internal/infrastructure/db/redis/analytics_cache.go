package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	analyticsPrefix     = "analytics:"
	DefaultAnalyticsTTL = 30 * time.Second
)

// AnalyticsCache stores computed aggregates as JSON under analytics:<name>.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a cache whose entries expire after ttl.
func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = DefaultAnalyticsTTL
	}
	return &AnalyticsCache{client: client, ttl: ttl}
}

// Get decodes the cached value for key into dst. A miss returns false and
// no error.
func (c *AnalyticsCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, analyticsPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("analytics cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("analytics cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("analytics cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, analyticsPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("analytics cache set: %w", err)
	}
	return nil
}

// Invalidate deletes every analytics:* key.
func (c *AnalyticsCache) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, analyticsPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("analytics cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("analytics cache invalidate: %w", err)
	}
	return nil
}
