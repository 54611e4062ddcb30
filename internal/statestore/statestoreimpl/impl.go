package statestoreimpl

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/repositories/storystate"
	"github.com/orgball2608/insta-story-player/internal/statestore"
	apperrors "github.com/orgball2608/insta-story-player/pkg/errors"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Repo   storystate.Repository
	Logger logger.Logger
}

type StoreImpl struct {
	repo   storystate.Repository
	logger logger.Logger
}

func New(opts Opts) *StoreImpl {
	return &StoreImpl{
		repo:   opts.Repo,
		logger: opts.Logger.WithComponent("StateStore"),
	}
}

var _ statestore.Store = (*StoreImpl)(nil)

func (s *StoreImpl) Get(ctx context.Context, userID int) domain.UserStoryState {
	state, err := s.repo.Get(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storystate.ErrNotFound):
		case errors.Is(err, storystate.ErrDecode):
			s.decodeFailed(userID, err)
		default:
			s.readFailed(userID, err)
		}
		return domain.DefaultStoryState(userID)
	}
	return *state
}

func (s *StoreImpl) Save(ctx context.Context, state domain.UserStoryState) {
	if state.LastViewedIndex < 0 {
		s.logger.Warn("Clamping negative last viewed index", "user_id", state.UserID, "index", state.LastViewedIndex)
		state.LastViewedIndex = 0
	}
	if err := s.repo.Upsert(ctx, state); err != nil {
		s.persistFailed("save", state.UserID, err)
	}
}

func (s *StoreImpl) MarkSeen(ctx context.Context, userID int) {
	if err := s.repo.MarkSeen(ctx, userID); err != nil {
		s.persistFailed("mark_seen", userID, err)
	}
}

// ToggleLike returns the flipped value even when the write is lost.
func (s *StoreImpl) ToggleLike(ctx context.Context, userID int) bool {
	liked, err := s.repo.ToggleLike(ctx, userID)
	if err != nil {
		s.persistFailed("toggle_like", userID, err)
		return !s.Get(ctx, userID).Liked
	}
	return liked
}

func (s *StoreImpl) UpdateLastViewedIndex(ctx context.Context, userID int, index int) {
	if index < 0 {
		s.logger.Warn("Clamping negative last viewed index", "user_id", userID, "index", index)
		index = 0
	}
	if err := s.repo.SetLastViewedIndex(ctx, userID, index); err != nil {
		s.persistFailed("update_last_viewed_index", userID, err)
	}
}

func (s *StoreImpl) decodeFailed(userID int, err error) {
	err = apperrors.WrapWithCode(err, apperrors.CodeDecodeFailure, "story state unreadable")
	s.logger.Warn("Falling back to default story state",
		"user_id", userID,
		"code", apperrors.GetCode(err),
		"error", err,
	)
}

func (s *StoreImpl) readFailed(userID int, err error) {
	err = apperrors.WrapWithCode(err, apperrors.CodeReadFailure, "story state not loaded")
	s.logger.Warn("Story state storage unreachable, using default",
		"user_id", userID,
		"code", apperrors.GetCode(err),
		"error", err,
	)
}

func (s *StoreImpl) persistFailed(op string, userID int, err error) {
	err = apperrors.WrapWithCode(err, apperrors.CodePersistFailure, "story state not persisted")
	s.logger.Error("Dropping story state change",
		"operation", op,
		"user_id", userID,
		"code", apperrors.GetCode(err),
		"error", err,
	)
}
