// Package cache is a thin Redis wrapper. When Redis is unreachable every
// operation degrades to a no-op/miss so the API works without it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cropconnect/api/config"
)

var (
	rdb *redis.Client
	ctx = context.Background()
)

// Connect initialises the Redis client and verifies it with a ping.
// On error the client is discarded and the cache stays disabled.
func Connect() error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb = nil
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Enabled reports whether a live Redis connection is available.
func Enabled() bool { return rdb != nil }

// Get unmarshals the cached value under key into dest.
// Returns true on a hit, false on miss, disabled cache, or decode error.
func Get(key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key for ttl.
func Set(key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes one or more keys.
func Del(keys ...string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
