// Package redis implements the learner state store on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// KVStore keeps learner state blobs as plain Redis strings without expiry.
type KVStore struct {
	client *redis.Client
}

// NewClient connects to addr and checks the connection.
func NewClient(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DB:          db,
		MaxRetries:  3,
		PoolTimeout: 4 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

func NewKVStore(client *redis.Client) *KVStore {
	return &KVStore{client: client}
}

// Get returns the blob stored under key, or storage.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Close() error {
	return s.client.Close()
}
