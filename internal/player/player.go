package player

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/feed"
	"github.com/orgball2608/insta-story-player/internal/navigator"
	"github.com/orgball2608/insta-story-player/internal/stories"
	"github.com/orgball2608/insta-story-player/pkg/config"
	apperrors "github.com/orgball2608/insta-story-player/pkg/errors"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

var (
	ErrSessionNotFound = apperrors.Wrap(apperrors.ErrNotFound, "session not found")
	ErrUnknownAction   = apperrors.Wrap(apperrors.ErrInvalidInput, "unknown session action")
	ErrClosed          = apperrors.Wrap(apperrors.ErrServiceUnavailable, "player is closed")
)

// Session actions accepted by Do.
const (
	ActionPause         = "pause"
	ActionResume        = "resume"
	ActionToggle        = "toggle"
	ActionNext          = "next"
	ActionPrevious      = "previous"
	ActionLike          = "like"
	ActionDoubleTap     = "double-tap"
	ActionSwipeNext     = "swipe-next"
	ActionSwipePrevious = "swipe-previous"
	ActionClose         = "close"
)

// FeedSource is the part of the feed controller the player needs.
type FeedSource interface {
	Snapshot() feed.Snapshot
	LoadMoreIfNeeded(ctx context.Context, userID int) (bool, error)
}

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Feed    *feed.Controller
	Stories stories.Client
	Config  *config.Config
	Logger  logger.Logger
}

// Manager runs story sessions and addresses them by id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*navigator.Session
	closed   bool

	feed       FeedSource
	navigation navigator.Opts
	logger     logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(opts Opts) *Manager {
	m := NewManager(opts.Feed, navigator.Opts{
		Interactions:  opts.Stories,
		Clock:         clockwork.NewRealClock(),
		TickInterval:  opts.Config.Player.TickInterval,
		StoryDuration: opts.Config.Player.StoryDuration,
		Logger:        opts.Logger,
	}, opts.Logger)

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			m.CloseAll()
			return nil
		},
	})
	return m
}

func NewManager(source FeedSource, navigation navigator.Opts, log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		sessions:   map[string]*navigator.Session{},
		feed:       source,
		navigation: navigation,
		logger:     log.WithComponent("Player"),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Open starts a session over the current feed at startIndex and returns its id.
// It fails with ErrClosed once CloseAll has been called.
func (m *Manager) Open(startIndex int) (string, error) {
	if m.isClosed() {
		return "", ErrClosed
	}
	items := m.feed.Snapshot().Items

	session, err := navigator.NewSession(m.ctx, items, startIndex, m.navigation)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		session.Close()
		return "", ErrClosed
	}
	m.sessions[id] = session
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		session.Run(m.ctx)
		m.remove(id)
	}()

	m.prefetch(items[startIndex])
	m.logger.Info("Opened story session", "session_id", id, "start_index", startIndex, "items", len(items))
	return id, nil
}

func (m *Manager) Get(id string) (*navigator.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	return session, ok
}

// Do applies action to session id and returns the resulting state.
func (m *Manager) Do(id, action string) (navigator.SessionSnapshot, error) {
	session, ok := m.Get(id)
	if !ok {
		return navigator.SessionSnapshot{}, ErrSessionNotFound
	}

	switch action {
	case ActionPause:
		session.Pause()
	case ActionResume:
		session.Resume()
	case ActionToggle:
		session.TogglePlayPause()
	case ActionNext:
		session.Next()
	case ActionPrevious:
		session.Previous()
	case ActionLike:
		session.ToggleLike()
	case ActionDoubleTap:
		session.DoubleTap()
	case ActionSwipeNext:
		session.SwipeNext()
	case ActionSwipePrevious:
		session.SwipePrevious()
	case ActionClose:
		session.Close()
	default:
		return navigator.SessionSnapshot{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	return session.Snapshot(), nil
}

// Len reports how many sessions are running.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll ends every session and waits for them to stop. Later calls to Open fail.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
	m.logger.Info("Closed all story sessions")
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	m.logger.Debug("Removed story session", "session_id", id)
}

// prefetch asks the feed for the next page when the opened user is close to its end.
func (m *Manager) prefetch(item domain.FeedItem) {
	go func() {
		if _, err := m.feed.LoadMoreIfNeeded(m.ctx, item.User.ID); err != nil {
			m.logger.Warn("Prefetch of next feed page failed", "user_id", item.User.ID, "error", err)
		}
	}()
}
