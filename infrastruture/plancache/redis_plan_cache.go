package plancache

import (
	"context"
	"errors"
	"time"

	"github.com/Jellal-17/puzzle-planner-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisPlanCache stores solve results in Redis with a TTL. A redsync
// mutex per key makes concurrent solves of the same puzzle compute only
// once.
type RedisPlanCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisPlanCache initializes a RedisPlanCache with the provided Redis client and TTL.
func NewRedisPlanCache(client *redis.Client, ttlSeconds int) (i.PlanCache, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}
	cache := &RedisPlanCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// GetOrCompute returns the cached value for key, computing and storing
// it under a per-key lock on a miss. A second reader that lost the lock
// race picks up the value the winner stored.
func (c *RedisPlanCache) GetOrCompute(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error) {
	if val, err := c.client.Get(ctx, key).Bytes(); err == nil {
		return val, nil
	} else if err != redis.Nil {
		return nil, err
	}

	mutex := c.locker.NewMutex(key + ":solve_lock")
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// Re-check after acquiring the lock; another instance may have
	// filled the key while we waited.
	if val, err := c.client.Get(ctx, key).Bytes(); err == nil {
		return val, nil
	} else if err != redis.Nil {
		return nil, err
	}

	val, err := compute()
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return nil, err
	}
	return val, nil
}
