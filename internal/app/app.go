package app

import (
	"context"
	"net/http"
	"time"

	"github.com/orgball2608/insta-story-player/internal/directory"
	"github.com/orgball2608/insta-story-player/internal/directory/directoryimpl"
	"github.com/orgball2608/insta-story-player/internal/feed"
	"github.com/orgball2608/insta-story-player/internal/httpapi"
	"github.com/orgball2608/insta-story-player/internal/media/mediaimpl"
	"github.com/orgball2608/insta-story-player/internal/player"
	repositories "github.com/orgball2608/insta-story-player/internal/repositories/fx"
	"github.com/orgball2608/insta-story-player/internal/statestore"
	"github.com/orgball2608/insta-story-player/internal/statestore/statestoreimpl"
	"github.com/orgball2608/insta-story-player/internal/stories"
	"github.com/orgball2608/insta-story-player/internal/stories/storiesimpl"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

const initialLoadTimeout = 30 * time.Second

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	repositories.Module,
	fx.Provide(
		fx.Annotate(
			statestoreimpl.New,
			fx.As(new(statestore.Store)),
		),
		fx.Annotate(
			directoryimpl.New,
			fx.As(new(directory.Client)),
		),
		mediaimpl.New,
		fx.Annotate(
			storiesimpl.New,
			fx.As(new(stories.Client)),
		),
		feed.New,
		player.New,
		httpapi.New,
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, feedCtrl *feed.Controller, _ *http.Server) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				loadCtx, cancelLoad := context.WithTimeout(ctx, initialLoadTimeout)
				defer cancelLoad()

				if err := feedCtrl.LoadNext(loadCtx); err != nil {
					log.Error("Initial feed load failed", "error", err)
				}
			}()

			if cfg.Feed.RefreshInterval > 0 {
				if err := feedCtrl.ScheduleRefresh(ctx, cfg.Feed.RefreshInterval); err != nil {
					log.Error("Schedule feed refresh error", "error", err)
				}
			}

			log.Info("Story player started",
				"state_backend", cfg.State.Backend,
				"media_provider", cfg.Media.Provider,
			)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
