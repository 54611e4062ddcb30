package statestore

import (
	"context"

	"github.com/orgball2608/insta-story-player/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=statestore.go -destination=mocks/mock.go

// Store is the per-user seen/liked/last-viewed state. Its methods never fail:
// unreadable records read as defaults and failed writes are logged and dropped.
type Store interface {
	Get(ctx context.Context, userID int) domain.UserStoryState
	Save(ctx context.Context, state domain.UserStoryState)
	MarkSeen(ctx context.Context, userID int)
	ToggleLike(ctx context.Context, userID int) bool
	UpdateLastViewedIndex(ctx context.Context, userID int, index int)
}
