package directory

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-story-player/internal/domain"
)

var ErrEmptyDirectory = errors.New("directory has no pages")

type Client interface {
	// GetUsers returns page (page-1) mod len(pages) of the users document.
	GetUsers(ctx context.Context, page int) ([]domain.User, error)
}
