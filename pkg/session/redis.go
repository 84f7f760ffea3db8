package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists credentials in Redis, keyed by a caller-chosen session
// name. Useful when several workers share one StitchDesk login.
type RedisStore struct {
	redis *redis.Client
	key   string
}

// NewRedisStore creates a Redis-backed store. Name distinguishes independent
// sessions sharing one Redis instance.
func NewRedisStore(redisClient *redis.Client, name string) *RedisStore {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{
		redis: redisClient,
		key:   "stitchdesk:session:" + name,
	}
}

// Load implements Store. A missing key yields zero Credentials.
func (s *RedisStore) Load(ctx context.Context) (Credentials, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Credentials{}, nil
		}
		return Credentials{}, fmt.Errorf("redis get session: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode session: %w", err)
	}
	return creds, nil
}

// Save implements Store. Sessions have no TTL: tokens do not expire
// client-side, they are only revoked by logout or a 401.
func (s *RedisStore) Save(ctx context.Context, creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.redis.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
