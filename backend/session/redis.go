package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "skillshub:session:"

// RedisRegistry stores sessions in Redis so they survive process restarts
// and can be shared between instances. Expiry rides on the key TTL, which
// gives the same observable behavior as lazy expiry: an expired token is
// simply gone on its next lookup.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{client: client, ttl: ttl}
}

func (r *RedisRegistry) Create(ctx context.Context, userID string) (string, error) {
	token := newToken()
	if err := r.client.Set(ctx, redisKeyPrefix+token, userID, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

func (r *RedisRegistry) Verify(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, redisKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("verify session: %w", err)
	}
	return userID, nil
}

func (r *RedisRegistry) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
