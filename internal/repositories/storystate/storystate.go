package storystate

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-story-player/internal/domain"
)

var (
	ErrNotFound   = errors.New("story state not found")
	ErrDecode     = errors.New("story state undecodable")
	ErrCannotRead = errors.New("error read story state")
	ErrCannotSave = errors.New("error save story state")
)

//go:generate go run go.uber.org/mock/mockgen -source=storystate.go -destination=mocks/mock.go

// Repository stores one record per user. Every method is atomic for its record.
type Repository interface {
	Get(ctx context.Context, userID int) (*domain.UserStoryState, error)
	Upsert(ctx context.Context, state domain.UserStoryState) error
	MarkSeen(ctx context.Context, userID int) error
	// ToggleLike flips liked, creating the record when missing, and returns the new value.
	ToggleLike(ctx context.Context, userID int) (bool, error)
	SetLastViewedIndex(ctx context.Context, userID int, index int) error
}
