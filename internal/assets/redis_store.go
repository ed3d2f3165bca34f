package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portfolio:asset:"

// RedisStore shares the asset cache between server replicas. Keys are written
// with SETNX and no expiry.
type RedisStore struct {
	client *redis.Client
}

// OpenRedisStore connects to addr and verifies the connection.
func OpenRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis cache backend requires an address")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis cache at %s: %w", addr, err)
	}
	return NewRedisStore(client), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.SetNX(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
