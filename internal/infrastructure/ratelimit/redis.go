package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
)

// RedisLimiter counts hits per key with a fixed expiry window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisLimiter connects to redis and returns the limiter.
func NewRedisLimiter(cfg *config.RedisConfig, prefix string, logger *zap.Logger) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisLimiter{
		client: client,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Hit increments the counter for key and returns the count inside the
// window. The expiry is set on the first hit only, so the counter covers a
// trailing window of at most the given duration.
func (l *RedisLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	full := l.prefix + ":" + key

	count, err := l.client.Incr(ctx, full).Result()
	if err != nil {
		l.logger.Error("Failed to increment rate limit counter",
			zap.String("key", full),
			zap.Error(err))
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, full, window).Err(); err != nil {
			l.logger.Error("Failed to set rate limit expiry",
				zap.String("key", full),
				zap.Error(err))
		}
	}

	return count, nil
}

// Close releases the redis connection.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
