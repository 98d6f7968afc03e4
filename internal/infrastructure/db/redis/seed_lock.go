package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	seedLockKey = "seed:lock"
	seedLockTTL = time.Minute
)

// releaseScript deletes the lock only while it still carries our token, so a
// lock that expired and was taken by another process is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SeedLock is a Redis SET NX lock that keeps concurrent seed runs, in this
// process or another one, from writing the dataset twice.
type SeedLock struct {
	client *redis.Client
	token  string
	ttl    time.Duration
}

// NewSeedLock creates a SeedLock wrapping the given Redis client.
func NewSeedLock(client *redis.Client) *SeedLock {
	return &SeedLock{client: client, token: uuid.NewString(), ttl: seedLockTTL}
}

// Acquire reports whether the lock was taken. It expires after seedLockTTL
// if the holder never releases it.
func (l *SeedLock) Acquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, seedLockKey, l.token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("seed lock acquire: %w", err)
	}
	return ok, nil
}

func (l *SeedLock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{seedLockKey}, l.token).Err(); err != nil {
		return fmt.Errorf("seed lock release: %w", err)
	}
	return nil
}
