package storiesimpl

import (
	"context"
	"sync"
	"time"

	"github.com/orgball2608/insta-story-player/internal/directory"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/media"
	"github.com/orgball2608/insta-story-player/internal/statestore"
	"github.com/orgball2608/insta-story-player/internal/stories"
	"github.com/orgball2608/insta-story-player/pkg/config"
	apperrors "github.com/orgball2608/insta-story-player/pkg/errors"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Directory directory.Client
	Media     media.Resolver
	Store     statestore.Store
	Config    *config.Config
	Logger    logger.Logger
}

type StoriesImpl struct {
	directory    directory.Client
	media        media.Resolver
	store        statestore.Store
	workers      int
	fetchTimeout time.Duration
	now          func() time.Time
	logger       logger.Logger
}

func New(opts Opts) *StoriesImpl {
	workers := opts.Config.Media.FetchWorkers
	if workers < 1 {
		workers = 1
	}
	return &StoriesImpl{
		directory:    opts.Directory,
		media:        opts.Media,
		store:        opts.Store,
		workers:      workers,
		fetchTimeout: opts.Config.Media.FetchTimeout,
		now:          time.Now,
		logger:       opts.Logger.WithComponent("StoryProvider"),
	}
}

var _ stories.Client = (*StoriesImpl)(nil)

func (s *StoriesImpl) GetStories(ctx context.Context, page int) ([]domain.FeedItem, error) {
	users, err := s.directory.GetUsers(ctx, page)
	if err != nil {
		s.logger.Error("Failed to load users page", "page", page, "error", err)
		return nil, apperrors.SourceUnavailable(err)
	}

	images := s.fetchImages(ctx, users)

	items := make([]domain.FeedItem, 0, len(users))
	for i, user := range users {
		items = append(items, domain.FeedItem{
			User: user,
			Story: domain.Story{
				UserID:    user.ID,
				ImageURLs: images[i],
				CreatedAt: s.now(),
			},
			State: s.store.Get(ctx, user.ID),
		})
	}

	s.logger.Debug("Loaded stories page", "page", page, "count", len(items))
	return items, nil
}

// fetchImages resolves every user's images on a bounded pool. Result i belongs to users[i];
// a failed or timed out user gets an empty sequence.
func (s *StoriesImpl) fetchImages(ctx context.Context, users []domain.User) [][]string {
	results := make([][]string, len(users))

	pool, err := ants.NewPool(s.workers, ants.WithPreAlloc(true))
	if err != nil {
		s.logger.Error("Failed to create fetch pool, fetching sequentially", "error", err)
		for i, user := range users {
			results[i] = s.fetchOne(ctx, user.ID)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		idx, userID := i, user.ID

		err := pool.Submit(func() {
			defer wg.Done()
			results[idx] = s.fetchOne(ctx, userID)
		})
		if err != nil {
			wg.Done()
			s.logger.Error("Failed to submit image fetch", "user_id", userID, "error", err)
			results[idx] = []string{}
		}
	}
	wg.Wait()

	return results
}

func (s *StoriesImpl) fetchOne(ctx context.Context, userID int) []string {
	fetchCtx := ctx
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	urls, err := s.media.GetStoryImages(fetchCtx, userID)
	if err != nil {
		err = apperrors.WrapWithCode(err, apperrors.CodePerUserFetchFailure, "story images unavailable")
		s.logger.Warn("Degrading user to an empty story",
			"user_id", userID,
			"code", apperrors.GetCode(err),
			"error", err,
		)
		return []string{}
	}
	return urls
}

func (s *StoriesImpl) MarkAsSeen(ctx context.Context, userID int) {
	s.store.MarkSeen(ctx, userID)
}

func (s *StoriesImpl) ToggleLike(ctx context.Context, userID int) bool {
	return s.store.ToggleLike(ctx, userID)
}

func (s *StoriesImpl) UpdateLastViewedIndex(ctx context.Context, userID int, index int) {
	s.store.UpdateLastViewedIndex(ctx, userID, index)
}

func (s *StoriesImpl) IsStoryLiked(ctx context.Context, userID int) bool {
	return s.store.Get(ctx, userID).Liked
}
