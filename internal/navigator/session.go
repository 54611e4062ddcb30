package navigator

import (
	"context"
	"sync"

	"github.com/orgball2608/insta-story-player/internal/domain"
	apperrors "github.com/orgball2608/insta-story-player/pkg/errors"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

var (
	ErrNoItems       = apperrors.Wrap(apperrors.ErrInvalidInput, "no feed items to play")
	ErrIndexOutRange = apperrors.Wrap(apperrors.ErrInvalidInput, "start index out of range")
)

// Why a session ended.
const (
	EndReasonNone      = ""
	EndReasonLastUser  = "last_user"
	EndReasonFirstUser = "first_user"
	EndReasonClosed    = "closed"
)

// SessionSnapshot is a session's position in its feed plus the player state.
type SessionSnapshot struct {
	Index     int      `json:"index"`
	Count     int      `json:"count"`
	Done      bool     `json:"done"`
	EndReason string   `json:"endReason,omitempty"`
	Player    Snapshot `json:"player"`
}

// Session owns the feed items being viewed and moves the controller between users
// when it reports a boundary. It ends at either end of the items.
type Session struct {
	mu         sync.Mutex
	items      []domain.FeedItem
	index      int
	controller *Controller
	done       chan struct{}
	endReason  string
	logger     logger.Logger
}

func NewSession(ctx context.Context, items []domain.FeedItem, startIndex int, opts Opts) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if startIndex < 0 || startIndex >= len(items) {
		return nil, ErrIndexOutRange
	}

	owned := make([]domain.FeedItem, len(items))
	copy(owned, items)

	s := &Session{
		items:      owned,
		index:      startIndex,
		controller: New(ctx, opts),
		done:       make(chan struct{}),
		logger:     opts.Logger.WithComponent("StorySession"),
	}
	s.controller.Reseed(owned[startIndex], ArrivalInitial)
	return s, nil
}

// Run starts playback and handles boundary events until the session ends or ctx is done.
func (s *Session) Run(ctx context.Context) {
	s.controller.Start()

	events := s.controller.Events()
	for {
		select {
		case <-ctx.Done():
			s.end(EndReasonClosed)
			return
		case ev, ok := <-events:
			if !ok {
				s.end(EndReasonClosed)
				return
			}
			s.handleBoundary(ev)
		}
	}
}

// Done is closed once the session has ended.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) handleBoundary(ev BoundaryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isDone() || ev.Seed != s.controller.Seed() {
		return
	}

	switch ev.Direction {
	case DirectionNext:
		if s.index+1 >= len(s.items) {
			s.endLocked(EndReasonLastUser)
			return
		}
		s.moveLocked(s.index+1, ArrivalNext)
	case DirectionPrevious:
		if s.index == 0 {
			s.endLocked(EndReasonFirstUser)
			return
		}
		s.moveLocked(s.index-1, ArrivalPrevious)
	}
}

// SwipeNext drags to the next user. It does nothing on the last user.
func (s *Session) SwipeNext() bool {
	return s.swipe(1)
}

// SwipePrevious drags to the previous user. It does nothing on the first user.
func (s *Session) SwipePrevious() bool {
	return s.swipe(-1)
}

func (s *Session) swipe(delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.index + delta
	if s.isDone() || target < 0 || target >= len(s.items) {
		return false
	}
	s.moveLocked(target, ArrivalSwipe)
	return true
}

func (s *Session) moveLocked(index int, arrival Arrival) {
	s.index = index
	s.controller.Reseed(s.items[index], arrival)
	s.controller.RefreshLikeState()
	s.controller.Start()
	s.logger.Debug("Moved to user", "index", index, "user_id", s.items[index].User.ID)
}

func (s *Session) Pause()           { s.controller.Pause() }
func (s *Session) Resume()          { s.controller.Resume() }
func (s *Session) TogglePlayPause() { s.controller.TogglePlayPause() }
func (s *Session) Next()            { s.controller.Advance() }
func (s *Session) Previous()        { s.controller.Retreat() }
func (s *Session) ToggleLike() bool { return s.controller.ToggleLike() }
func (s *Session) DoubleTap() bool  { return s.controller.LikeOnce() }

// Close ends the session. Calling it again does nothing.
func (s *Session) Close() {
	s.end(EndReasonClosed)
}

func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionSnapshot{
		Index:     s.index,
		Count:     len(s.items),
		Done:      s.isDone(),
		EndReason: s.endReason,
		Player:    s.controller.Snapshot(),
	}
}

func (s *Session) end(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endLocked(reason)
}

func (s *Session) endLocked(reason string) {
	if s.isDone() {
		return
	}
	s.endReason = reason
	s.controller.Close()
	close(s.done)
	s.logger.Info("Story session ended", "reason", reason, "index", s.index)
}

func (s *Session) isDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
