package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON wrapper over redis for storefront reads.
// A nil *Cache is valid and behaves as a no-op (redis not configured).
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

var ErrMiss = errors.New("cache miss")

func New(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Cache{rdb: rdb, ttl: ttl}, nil
}

func (c *Cache) Get(ctx context.Context, key string, dst any) error {
	if c == nil {
		return ErrMiss
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (c *Cache) Set(ctx context.Context, key string, v any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops keys matching the given patterns. Used after admin writes
// so the storefront never serves stale catalog data past the TTL.
func (c *Cache) Invalidate(ctx context.Context, patterns ...string) {
	if c == nil {
		return
	}
	for _, p := range patterns {
		keys, err := c.rdb.Keys(ctx, p).Result()
		if err != nil || len(keys) == 0 {
			continue
		}
		_ = c.rdb.Del(ctx, keys...).Err()
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
