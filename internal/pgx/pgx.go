package pgx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/orgball2608/insta-story-player/internal/migrations"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Logger logger.Logger
	Config *config.Config
}

// New creates a pgxpool.Pool, migrates the schema on start and closes the pool on stop.
func New(opts Opts) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), opts.Config.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := pool.Ping(ctx); err != nil {
					return fmt.Errorf("failed to ping postgres: %w", err)
				}
				opts.Logger.Info("Connected to postgres")

				applied, err := migrate(ctx, opts.Config)
				if err != nil {
					return err
				}
				opts.Logger.Info("Postgres migrations applied", "count", applied)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				pool.Close()
				return nil
			},
		},
	)

	return pool, nil
}

func migrate(ctx context.Context, cfg *config.Config) (int, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return 0, fmt.Errorf("failed to open postgres for migrations: %w", err)
	}
	defer db.Close()

	return migrations.Up(ctx, db, goose.DialectPostgres)
}
