package mediaimpl

import (
	"fmt"
	"net/http"

	"github.com/orgball2608/insta-story-player/internal/media"
	"github.com/orgball2608/insta-story-player/internal/ratelimit"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"github.com/orgball2608/insta-story-player/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// New picks the resolver named by MEDIA_PROVIDER.
func New(opts Opts) (media.Resolver, error) {
	cfg := opts.Config.Media

	switch cfg.Provider {
	case config.MediaPicsum, "":
		return NewPicsumResolver(cfg.BaseURL, cfg.MinImages, cfg.MaxImages), nil
	case config.MediaUnsplash:
		if cfg.UnsplashAccessKey == "" {
			return nil, fmt.Errorf("MEDIA_UNSPLASH_ACCESS_KEY is required for the unsplash provider")
		}
		return NewUnsplashResolver(UnsplashOpts{
			BaseURL:   cfg.UnsplashURL,
			AccessKey: cfg.UnsplashAccessKey,
			MinImages: cfg.MinImages,
			MaxImages: cfg.MaxImages,
			Client:    &http.Client{Timeout: cfg.FetchTimeout},
			Limiter:   ratelimit.NewInMemoryLimiter(cfg.RateRequests, cfg.RatePer, cfg.RateBurst),
			Retry:     retry.DefaultConfig(),
			Logger:    opts.Logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown media provider %q", cfg.Provider)
	}
}
