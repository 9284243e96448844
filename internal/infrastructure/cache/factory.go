package cache

import (
	"fmt"

	"github.com/erp/usability/internal/infrastructure/config"
	"go.uber.org/zap"
)

// LockerFactory creates job lockers based on configuration
type LockerFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// LockerFactoryOption is a functional option for configuring the factory
type LockerFactoryOption func(*LockerFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) LockerFactoryOption {
	return func(f *LockerFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory locker when Redis is unavailable.
// Default is true.
func WithInMemoryFallback(allow bool) LockerFactoryOption {
	return func(f *LockerFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewLockerFactory creates a new factory
func NewLockerFactory(cfg config.RedisConfig, opts ...LockerFactoryOption) *LockerFactory {
	f := &LockerFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisLocker creates a Redis-backed locker
func (f *LockerFactory) CreateRedisLocker() (*RedisLocker, error) {
	client, err := NewRedisClient(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis locker: %w", err)
	}
	return NewRedisLocker(client, ""), nil
}

// CreateInMemoryLocker creates an in-memory locker.
// WARNING: in-memory locks are not shared across processes, so two workers
// may run the same job concurrently.
func (f *LockerFactory) CreateInMemoryLocker() *InMemoryLocker {
	return NewInMemoryLocker()
}

// CreateLocker returns a Redis locker when Redis is enabled and reachable,
// otherwise an in-memory one if fallback is allowed
func (f *LockerFactory) CreateLocker() (Locker, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory job locks")
		return f.CreateInMemoryLocker(), nil
	}

	locker, err := f.CreateRedisLocker()
	if err == nil {
		f.logger.Info("using Redis job locks", zap.String("addr", f.redisConfig.Addr()))
		return locker, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for job locks but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory job locks. "+
		"Jobs may overlap across processes.",
		zap.Error(err),
	)
	return f.CreateInMemoryLocker(), nil
}
