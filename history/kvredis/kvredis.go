// Package kvredis persists key-value pairs in Redis, for setups where the
// history should be shared between machines.
package kvredis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gosom/google-maps-coordinates/history"
)

var _ history.KV = (*repo)(nil)

type repo struct {
	client *redis.Client
}

func New(ctx context.Context, addr string) (history.KV, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &repo{client: client}, nil
}

// NewWithClient wraps an existing client. The caller keeps ownership.
func NewWithClient(client *redis.Client) history.KV {
	return &repo{client: client}
}

func (r *repo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return value, true, nil
}

func (r *repo) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *repo) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *repo) Close() error {
	return r.client.Close()
}
