package media

import (
	"context"
	"errors"
)

var ErrBadStatus = errors.New("media source returned an error status")

//go:generate go run go.uber.org/mock/mockgen -source=media.go -destination=mocks/mock.go

// Resolver returns the ordered image references of one user's story.
type Resolver interface {
	GetStoryImages(ctx context.Context, userID int) ([]string, error)
}
