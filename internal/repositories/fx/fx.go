package fx

import (
	"github.com/orgball2608/insta-story-player/internal/repositories/storystate"
	"go.uber.org/fx"
)

var Module = fx.Options(
	storystate.Module,
)
