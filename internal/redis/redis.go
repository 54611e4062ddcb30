package redis

import (
	"context"
	"fmt"

	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) *goredis.Client {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Config.Redis.Addr,
		Password: opts.Config.Redis.Password,
		DB:       opts.Config.Redis.DB,
	})

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("failed to ping redis: %w", err)
				}
				opts.Logger.Info("Connected to redis", "addr", opts.Config.Redis.Addr)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		},
	)

	return client
}
