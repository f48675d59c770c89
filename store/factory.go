package store

// Driver represents the backing implementation of a store.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverRedis  Driver = "redis"
)

// New creates a Store for the given driver.
// The file driver requires WithDir; the redis driver requires
// WithRedisClient.
func New(driver Driver, opts ...Option) (Store, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch driver {
	case DriverMemory:
		return newMemoryStore(), nil

	case DriverFile:
		if cfg.dir == "" {
			return nil, ErrInvalidConfig
		}
		return newFileStore(cfg.dir)

	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return &redisStore{client: cfg.redisClient, ttl: cfg.redisTTL}, nil

	default:
		return nil, ErrInvalidDriver
	}
}
