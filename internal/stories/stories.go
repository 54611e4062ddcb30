package stories

import (
	"context"

	"github.com/orgball2608/insta-story-player/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=stories.go -destination=mocks/mock.go

// Interactions are the state changes a story viewer makes while playing.
type Interactions interface {
	MarkAsSeen(ctx context.Context, userID int)
	ToggleLike(ctx context.Context, userID int) bool
	UpdateLastViewedIndex(ctx context.Context, userID int, index int)
	IsStoryLiked(ctx context.Context, userID int) bool
}

type Client interface {
	Interactions

	// GetStories returns one page of users joined with a fresh story and their state.
	// Only directory failures are returned; they carry errors.CodeSourceUnavailable.
	GetStories(ctx context.Context, page int) ([]domain.FeedItem, error)
}
