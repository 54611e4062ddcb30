package navigator

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/stories"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

const (
	DefaultTickInterval  = 50 * time.Millisecond
	DefaultStoryDuration = 5 * time.Second

	eventBuffer = 4
)

type Opts struct {
	Interactions  stories.Interactions
	Clock         clockwork.Clock
	TickInterval  time.Duration
	StoryDuration time.Duration
	Logger        logger.Logger
}

// Snapshot is the controller's observable playback state.
type Snapshot struct {
	UserID     int       `json:"userId"`
	Index      int       `json:"index"`
	ImageCount int       `json:"imageCount"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Progress   float64   `json:"progress"`
	Playing    bool      `json:"playing"`
	Liked      bool      `json:"liked"`
	Pending    Direction `json:"pending"`
	Seed       uint64    `json:"seed"`
	Closed     bool      `json:"closed"`
}

// Controller plays one user's story at a time. Every transition stops the running ticker
// before starting another, and ticks from a replaced ticker are ignored.
type Controller struct {
	mu sync.Mutex

	interactions  stories.Interactions
	clock         clockwork.Clock
	interval      time.Duration
	ticksPerImage int
	logger        logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	events chan BoundaryEvent

	item    domain.FeedItem
	arrival Arrival
	seed    uint64
	cursor  int
	ticks   int
	playing bool
	started bool
	liked   bool
	pending Direction
	closed  bool

	gen    uint64
	ticker clockwork.Ticker
	stop   chan struct{}
}

func New(ctx context.Context, opts Opts) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.StoryDuration <= 0 {
		opts.StoryDuration = DefaultStoryDuration
	}
	ticks := int(opts.StoryDuration / opts.TickInterval)
	if ticks < 1 {
		ticks = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	return &Controller{
		interactions:  opts.Interactions,
		clock:         opts.Clock,
		interval:      opts.TickInterval,
		ticksPerImage: ticks,
		logger:        opts.Logger.WithComponent("StoryNavigator"),
		ctx:           ctx,
		cancel:        cancel,
		events:        make(chan BoundaryEvent, eventBuffer),
	}
}

// Events delivers boundary events. The channel is closed by Close.
func (c *Controller) Events() <-chan BoundaryEvent {
	return c.events
}

// Reseed replaces the shown user. The cursor comes from arrival; playback stays stopped
// until Start.
func (c *Controller) Reseed(item domain.FeedItem, arrival Arrival) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stopTicker()

	c.item = item
	c.arrival = arrival
	c.seed++
	c.ticks = 0
	c.playing = false
	c.started = false
	c.pending = DirectionNone
	c.liked = item.State.Liked

	last := item.Story.LastIndex()
	switch arrival {
	case ArrivalPrevious:
		c.cursor = last
	case ArrivalNext, ArrivalSwipe:
		c.cursor = 0
	default:
		c.cursor = clamp(item.State.LastViewedIndex, 0, last)
	}
	c.item.Story.CurrentIndex = c.cursor
}

// Start plays from the current image with zero progress. It marks the story seen and
// persists the cursor.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.started = true
	c.pending = DirectionNone

	if len(c.item.Story.ImageURLs) == 0 {
		c.stopTicker()
		c.playing = false
		dir := DirectionNext
		if c.arrival == ArrivalPrevious {
			dir = DirectionPrevious
		}
		c.logger.Debug("Skipping user without images", "user_id", c.item.User.ID)
		c.requestAdjacent(dir)
		return
	}

	c.startLocked()
}

func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.playing {
		return
	}
	c.playing = false
	c.stopTicker()
}

// Resume continues from the progress reached before Pause.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.playing || !c.started || c.pending != DirectionNone || len(c.item.Story.ImageURLs) == 0 {
		return
	}
	c.playing = true
	c.startTicker()
}

func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	playing := c.playing
	c.mu.Unlock()

	if playing {
		c.Pause()
	} else {
		c.Resume()
	}
}

// Advance moves to the next image, or requests the next user from the last one.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.pending != DirectionNone {
		return
	}
	c.stopTicker()
	c.nextLocked()
}

// Retreat moves to the previous image, or requests the previous user from the first one.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.pending != DirectionNone {
		return
	}
	c.stopTicker()

	if c.cursor > 0 {
		c.setCursor(c.cursor - 1)
		c.startLocked()
		return
	}
	c.playing = false
	c.requestAdjacent(DirectionPrevious)
}

func (c *Controller) ToggleLike() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.liked
	}
	c.liked = c.interactions.ToggleLike(c.ctx, c.item.User.ID)
	c.item.State.Liked = c.liked
	return c.liked
}

// LikeOnce likes the story if it is not liked yet. It never unlikes.
func (c *Controller) LikeOnce() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.liked {
		return c.liked
	}
	c.liked = c.interactions.ToggleLike(c.ctx, c.item.User.ID)
	c.item.State.Liked = c.liked
	return c.liked
}

// RefreshLikeState reloads the liked flag from storage.
func (c *Controller) RefreshLikeState() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.liked
	}
	c.liked = c.interactions.IsStoryLiked(c.ctx, c.item.User.ID)
	c.item.State.Liked = c.liked
	return c.liked
}

// Close stops the ticker for good and closes Events. Calling it again does nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.playing = false
	c.stopTicker()
	c.cancel()
	close(c.events)
}

func (c *Controller) Seed() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seed
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	url, _ := c.item.Story.CurrentImageURL()
	return Snapshot{
		UserID:     c.item.User.ID,
		Index:      c.cursor,
		ImageCount: len(c.item.Story.ImageURLs),
		ImageURL:   url,
		Progress:   float64(c.ticks) / float64(c.ticksPerImage),
		Playing:    c.playing,
		Liked:      c.liked,
		Pending:    c.pending,
		Seed:       c.seed,
		Closed:     c.closed,
	}
}

// startLocked restarts the current image from zero. Callers hold mu.
func (c *Controller) startLocked() {
	c.stopTicker()
	c.ticks = 0
	c.playing = true

	userID := c.item.User.ID
	c.interactions.MarkAsSeen(c.ctx, userID)
	c.item.State.Seen = true
	c.interactions.UpdateLastViewedIndex(c.ctx, userID, c.cursor)
	c.item.State.LastViewedIndex = c.cursor

	c.startTicker()
}

func (c *Controller) nextLocked() {
	if c.cursor+1 < len(c.item.Story.ImageURLs) {
		c.setCursor(c.cursor + 1)
		c.startLocked()
		return
	}
	c.playing = false
	c.requestAdjacent(DirectionNext)
}

func (c *Controller) setCursor(index int) {
	c.cursor = index
	c.item.Story.CurrentIndex = index
}

func (c *Controller) requestAdjacent(dir Direction) {
	c.pending = dir
	ev := BoundaryEvent{Direction: dir, UserID: c.item.User.ID, Seed: c.seed}

	select {
	case c.events <- ev:
	default:
		c.logger.Warn("Dropping boundary event, host is not reading", "user_id", ev.UserID, "direction", dir.String())
	}
}

func (c *Controller) startTicker() {
	c.stopTicker()

	c.gen++
	gen := c.gen
	ticker := c.clock.NewTicker(c.interval)
	stop := make(chan struct{})
	c.ticker, c.stop = ticker, stop

	go c.run(gen, ticker, stop)
}

// stopTicker is safe to call when nothing is running.
func (c *Controller) stopTicker() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.stop)
	c.ticker, c.stop = nil, nil
	c.gen++
}

func (c *Controller) run(gen uint64, ticker clockwork.Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-c.ctx.Done():
			return
		case <-ticker.Chan():
			c.handleTick(gen)
		}
	}
}

func (c *Controller) handleTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.gen || !c.playing {
		return
	}

	c.ticks++
	if c.ticks < c.ticksPerImage {
		return
	}
	c.ticks = c.ticksPerImage
	c.stopTicker()
	c.nextLocked()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
