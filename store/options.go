package store

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Option is a functional option for configuring a store.
type Option func(*config)

// config holds configuration for store drivers.
type config struct {
	dir         string
	redisClient *redis.Client
	redisTTL    time.Duration
}

// WithDir sets the state directory for the file driver.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithRedisClient sets the Redis client for the redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(c *config) {
		c.redisClient = client
	}
}

// WithRedisTTL sets the TTL for redis keys. Zero means no expiry.
func WithRedisTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.redisTTL = ttl
	}
}
