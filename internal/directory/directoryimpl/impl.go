package directoryimpl

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/orgball2608/insta-story-player/internal/directory"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/fx"
)

//go:embed users.json
var defaultUsers []byte

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type DirectoryImpl struct {
	path   string
	logger logger.Logger
}

func New(opts Opts) *DirectoryImpl {
	return &DirectoryImpl{
		path:   opts.Config.Directory.Path,
		logger: opts.Logger.WithComponent("Directory"),
	}
}

var _ directory.Client = (*DirectoryImpl)(nil)

// GetUsers re-reads the document on every call so an edited file is picked up.
func (d *DirectoryImpl) GetUsers(ctx context.Context, page int) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := d.read()
	if err != nil {
		return nil, err
	}

	var resp domain.UsersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		d.logger.Error("Failed to decode users document", "path", d.path, "error", err)
		return nil, fmt.Errorf("failed to decode users document: %w", err)
	}

	if len(resp.Pages) == 0 {
		return nil, directory.ErrEmptyDirectory
	}

	return resp.Pages[pageIndex(page, len(resp.Pages))].Users, nil
}

func (d *DirectoryImpl) read() ([]byte, error) {
	if d.path == "" {
		return defaultUsers, nil
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users document %s: %w", d.path, err)
	}
	return data, nil
}

// pageIndex maps a 1-based page onto the available pages, wrapping in both directions.
func pageIndex(page, count int) int {
	return ((page-1)%count + count) % count
}
