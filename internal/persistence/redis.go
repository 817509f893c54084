package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/servicedesk-seeder/internal/config"
)

const lastRunKey = "seeder:last_run"

// Redis wraps the client for the optional secondary store. The seeder
// only probes connectivity and leaves a completion marker; all errors
// here are reported as warnings, never escalated.
type Redis struct {
	Client *redis.Client
	logger *zap.Logger
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := &Redis{Client: client, logger: logger}
	if err := r.Ping(context.Background()); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return r
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// MarkRun records the completion time of a successful seeding run.
/// Best effort: a failure is logged and swallowed.
func (r *Redis) MarkRun(ctx context.Context, finishedAt time.Time) {
	if r == nil || r.Client == nil {
		return
	}
	if err := r.Client.Set(ctx, lastRunKey, finishedAt.UTC().Format(time.RFC3339), 0).Err(); err != nil {
		r.logger.Warn("unable to record run marker", zap.Error(err))
	}
}
