package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/cookstore/pkg/errors"
)

// Redis is a Store backed by a Redis server. It is the backend for
// deployments where cart state must survive process restarts and be
// shared across storefront instances.
//
// Redis 是由Redis服务器支持的存储。
// 适用于购物车状态需要在进程重启后保留并在多个实例间共享的部署。
type Redis struct {
	client    *redis.Client
	keyPrefix string
}

// RedisOptions configures a Redis-backed store.
type RedisOptions struct {
	Addr     string // host:port of the Redis server
	Password string // optional password
	DB       int    // logical database number
	// KeyPrefix is prepended to every key to namespace the storefront's
	// data inside a shared Redis instance.
	KeyPrefix string
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}

	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "cookstore:"
	}
	return &Redis{client: client, keyPrefix: prefix}, nil
}

func (s *Redis) key(key string) string {
	return s.keyPrefix + key
}

// Get implements Store.
func (s *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.ErrKeyEmpty
	}
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewKeyError(key, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
	}
	return v, true, nil
}

// Set implements Store.
func (s *Redis) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.ErrKeyEmpty
	}
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.NewKeyError(key, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
	}
	return nil
}

// Delete implements Store.
func (s *Redis) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.ErrKeyEmpty
	}
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.NewKeyError(key, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err))
	}
	return nil
}

// Close implements Store.
func (s *Redis) Close() error {
	return s.client.Close()
}
