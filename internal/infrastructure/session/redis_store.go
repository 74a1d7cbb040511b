package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

// RedisStore keeps customer sessions as opaque tokens with a TTL. The
// card endpoints resolve the token on every request, so an expired
// session fails closed.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl == 0 {
		ttl = time.Hour
	}
	return &RedisStore{
		client: client,
		prefix: "trexle:session",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("%s:%s", s.prefix, token)
}

func (s *RedisStore) Create(ctx context.Context, customerID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), customerID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	customerID, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", err
	}
	// sliding expiry
	s.client.Expire(ctx, s.key(token), s.ttl)
	return customerID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
