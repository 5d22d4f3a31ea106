// Package cache provides the Redis-backed session cache and its no-op fallback.
package cache

import (
	"context"
	"log/slog"

	"tiffin/config"
	"tiffin/internal/domain/lifecycle"
	"tiffin/internal/errors"

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

// New creates the Redis client. Redis is optional; when it is not configured
// the client is nil and the session cache degrades to a no-op.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		params.Logger.Info("redis not configured, session cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
