package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore implements Store on Redis so a session can be shared across
// machines. Keys are namespaced under "cybershield:".
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *redisStore) key(key string) string { return "cybershield:" + key }

// Load implements Store.
func (s *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Save implements Store.
func (s *redisStore) Save(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, s.ttl).Err()
}

// Delete implements Store.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}
