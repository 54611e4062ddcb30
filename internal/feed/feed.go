package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/stories"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

const defaultLookAhead = 3

// Snapshot is a copy of the controller's observable state.
type Snapshot struct {
	Items        []domain.FeedItem `json:"items"`
	Loading      bool              `json:"loading"`
	HasError     bool              `json:"hasError"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Page         int               `json:"page"`
}

type Opts struct {
	fx.In

	Stories stories.Client
	Config  *config.Config
	Logger  logger.Logger
}

// Controller pages the story rail and drops users already loaded.
type Controller struct {
	mu           sync.Mutex
	items        []domain.FeedItem
	loaded       map[int]struct{}
	loading      bool
	hasError     bool
	errorMessage string
	page         int
	// epoch changes on Refresh; loads started under an older epoch are discarded.
	epoch uint64

	stories   stories.Client
	lookAhead int
	logger    logger.Logger
}

func New(opts Opts) *Controller {
	lookAhead := opts.Config.Feed.LookAhead
	if lookAhead <= 0 {
		lookAhead = defaultLookAhead
	}
	return &Controller{
		loaded:    map[int]struct{}{},
		page:      1,
		stories:   opts.Stories,
		lookAhead: lookAhead,
		logger:    opts.Logger.WithComponent("FeedController"),
	}
}

// LoadNext fetches the current page and appends its unseen users. It returns nil without
// fetching when a load is already in flight.
func (c *Controller) LoadNext(ctx context.Context) error {
	_, err := c.loadNext(ctx)
	return err
}

func (c *Controller) loadNext(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return false, nil
	}
	c.loading = true
	page, epoch := c.page, c.epoch
	c.mu.Unlock()

	items, err := c.stories.GetStories(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		c.logger.Debug("Discarding page loaded before refresh", "page", page)
		return true, nil
	}
	c.loading = false

	if err != nil {
		c.hasError = true
		c.errorMessage = err.Error()
		c.logger.Error("Failed to load feed page", "page", page, "error", err)
		return true, err
	}

	added := 0
	for _, item := range items {
		if _, ok := c.loaded[item.User.ID]; ok {
			continue
		}
		c.loaded[item.User.ID] = struct{}{}
		c.items = append(c.items, item)
		added++
	}
	c.page++
	c.hasError = false
	c.errorMessage = ""

	c.logger.Info("Loaded feed page", "page", page, "added", added, "total", len(c.items))
	return true, nil
}

// Refresh drops every loaded item and loads page 1 again.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.items = nil
	c.loaded = map[int]struct{}{}
	c.page = 1
	c.loading = false
	c.epoch++
	c.mu.Unlock()

	return c.LoadNext(ctx)
}

// LoadMoreIfNeeded loads the next page when userID sits within the look-ahead window of the
// end of the loaded items. Unknown users count as position 0. It reports whether a load ran.
func (c *Controller) LoadMoreIfNeeded(ctx context.Context, userID int) (bool, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return false, nil
	}
	position := 0
	for i, item := range c.items {
		if item.User.ID == userID {
			position = i
			break
		}
	}
	near := position >= len(c.items)-c.lookAhead
	c.mu.Unlock()

	if !near {
		return false, nil
	}
	return c.loadNext(ctx)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.FeedItem, len(c.items))
	copy(items, c.items)
	return Snapshot{
		Items:        items,
		Loading:      c.loading,
		HasError:     c.hasError,
		ErrorMessage: c.errorMessage,
		Page:         c.page,
	}
}

// ScheduleRefresh refreshes the feed every interval until ctx ends.
func (c *Controller) ScheduleRefresh(ctx context.Context, interval time.Duration) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create feed refresh scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				c.logger.Info("Context cancelled, skipping feed refresh")
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, interval)
			defer cancel()

			if err := c.Refresh(taskCtx); err != nil {
				c.logger.Warn("Scheduled feed refresh failed", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule feed refresh: %w", err)
	}

	scheduler.Start()
	c.logger.Info("Scheduled feed refresh", "interval", interval.String())

	go func() {
		<-ctx.Done()
		c.logger.Info("Stopping feed refresh scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.logger.Error("Failed to shut down feed refresh scheduler", "error", err)
		}
	}()

	return nil
}
