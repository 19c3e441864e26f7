package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKey = "murmur:token"

// redisStore keeps the token under a fixed Redis key, for setups where the
// client runs on more than one machine against a shared Redis.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context) (string, error) {
	tok, err := s.client.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token from redis: %w", err)
	}
	return tok, nil
}

func (s *redisStore) Set(ctx context.Context, tok string) error {
	if err := s.client.Set(ctx, redisKey, tok, 0).Err(); err != nil {
		return fmt.Errorf("write token to redis: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("clear token in redis: %w", err)
	}
	return nil
}
