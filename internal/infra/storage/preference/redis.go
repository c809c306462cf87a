package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:lang:"

// RedisStore язык посетителя в Redis с TTL
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore ttl <= 0 хранит ключ без срока
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func (s *RedisStore) key(visitorID string) string {
	return keyPrefix + visitorID
}

// Get сохранённый язык посетителя
func (s *RedisStore) Get(ctx context.Context, visitorID string) (string, error) {
	lang, err := s.redis.Get(ctx, s.key(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: get %s: %v", ErrStore, visitorID, err)
	}
	return lang, nil
}

// Set сохраняет язык и продлевает TTL
func (s *RedisStore) Set(ctx context.Context, visitorID, lang string) error {
	if err := s.redis.Set(ctx, s.key(visitorID), lang, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStore, visitorID, err)
	}
	return nil
}
