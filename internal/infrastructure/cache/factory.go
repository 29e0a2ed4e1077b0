package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/tenantbill/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Stores bundles the Redis-or-memory backed components the server needs
type Stores struct {
	Client      *redis.Client
	Idempotency shared.IdempotencyStore
	Blacklist   auth.TokenBlacklist
}

// Close releases the idempotency store and the Redis client
func (s *Stores) Close() error {
	var firstErr error
	if s.Idempotency != nil {
		firstErr = s.Idempotency.Close()
	}
	if s.Client != nil {
		if err := s.Client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// StoreFactory creates stores based on configuration
type StoreFactory struct {
	logger                *zap.Logger
	allowInMemoryFallback bool
	connect               func() (*redis.Client, error)
	redisEnabled          bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory stores
// when Redis is enabled but unreachable. Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(cfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		redisEnabled:          cfg.Enabled,
		connect: func() (*redis.Client, error) {
			return NewRedisClient(cfg)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// InMemory returns process-local stores
func (f *StoreFactory) InMemory() *Stores {
	return &Stores{
		Idempotency: NewInMemoryIdempotencyStore(),
		Blacklist:   auth.NewInMemoryTokenBlacklist(),
	}
}

// Create returns Redis-backed stores when Redis is enabled and reachable
func (f *StoreFactory) Create() (*Stores, error) {
	if !f.redisEnabled {
		f.logger.Info("redis disabled, using in-memory idempotency store and token blacklist")
		return f.InMemory(), nil
	}

	client, err := f.connect()
	if err == nil {
		f.logger.Info("using Redis idempotency store and token blacklist")
		return &Stores{
			Client:      client,
			Idempotency: NewRedisIdempotencyStore(client, ""),
			Blacklist:   auth.NewRedisTokenBlacklist(client),
		}, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required but unavailable: %w", err)
	}

	f.logger.Warn("redis unavailable, falling back to in-memory stores; revoked tokens and idempotency keys are not shared across instances",
		zap.Error(err),
	)
	return f.InMemory(), nil
}
