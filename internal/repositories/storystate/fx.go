package storystate

import (
	"fmt"

	"github.com/orgball2608/insta-story-player/internal/pgx"
	"github.com/orgball2608/insta-story-player/internal/redis"
	"github.com/orgball2608/insta-story-player/internal/sqlite"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Provide(NewFromConfig)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Logger logger.Logger
	Config *config.Config
}

// NewFromConfig builds the repository for STATE_BACKEND, opening only the backend it needs.
func NewFromConfig(opts Opts) (Repository, error) {
	switch opts.Config.State.Backend {
	case config.BackendSqlite:
		db, err := sqlite.New(sqlite.Opts{LC: opts.LC, Logger: opts.Logger, Config: opts.Config})
		if err != nil {
			return nil, err
		}
		return NewSqliteRepository(db, opts.Logger), nil
	case config.BackendPostgres:
		pool, err := pgx.New(pgx.Opts{LC: opts.LC, Logger: opts.Logger, Config: opts.Config})
		if err != nil {
			return nil, err
		}
		return NewPgxRepository(pool, opts.Logger), nil
	case config.BackendRedis:
		client := redis.New(redis.Opts{LC: opts.LC, Logger: opts.Logger, Config: opts.Config})
		return NewRedisRepository(client, opts.Logger), nil
	case config.BackendMemory:
		return NewBlobRepository(NewMemoryByteStore(), opts.Logger), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", opts.Config.State.Backend)
	}
}
