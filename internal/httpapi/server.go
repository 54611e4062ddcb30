package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/insta-story-player/internal/feed"
	"github.com/orgball2608/insta-story-player/internal/player"
	"github.com/orgball2608/insta-story-player/internal/statestore"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Feed   *feed.Controller
	Store  statestore.Store
	Player *player.Manager
	Config *config.Config
	Logger logger.Logger
}

// New registers the HTTP server with the app lifecycle.
func New(opts Opts) *http.Server {
	handler := NewHandler(opts.Feed, opts.Store, opts.Player, opts.Logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			opts.Logger.Info("Starting server", "addr", srv.Addr)

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					opts.Logger.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			opts.Logger.Info("Stopping server")
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
