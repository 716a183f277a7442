package cache

import (
	"context"
	"log/slog"

	"saleslens/config"
	"saleslens/internal/domain/lifecycle"
	"saleslens/internal/domain/service"
	"saleslens/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewReportCache returns a Redis-backed cache when enabled, otherwise a no-op cache
func NewReportCache(params Params) (service.ReportCache, error) {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Report cache disabled")

		return NewNoopReportCache(), nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	opt.DB = cfg.RedisDB

	client := redis.NewClient(opt)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Redis report cache connected",
				slog.Int("db", cfg.RedisDB),
				slog.Duration("ttl", cfg.TTL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisReportCache(client, cfg.KeyPrefix, cfg.TTL), nil
}
