package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisSourceCache struct {
	client *redis.Client
}

func NewRedisSourceCache(client *redis.Client) SourceCache {
	return &redisSourceCache{client: client}
}

func (c *redisSourceCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisSourceCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}
