package statestoreimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/repositories/storystate"
	mock_storystate "github.com/orgball2608/insta-story-player/internal/repositories/storystate/mocks"
	"github.com/orgball2608/insta-story-player/internal/sqlite"
	apperrors "github.com/orgball2608/insta-story-player/pkg/errors"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newStores(t *testing.T) map[string]*StoreImpl {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "states.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	log := logger.NewNop()
	return map[string]*StoreImpl{
		"sqlite": New(Opts{Repo: storystate.NewSqliteRepository(db, log), Logger: log}),
		"memory": New(Opts{Repo: storystate.NewBlobRepository(storystate.NewMemoryByteStore(), log), Logger: log}),
	}
}

func TestGetWithoutRecordReturnsDefaults(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []int{0, 1, 42, -3} {
				if got, want := store.Get(context.Background(), id), domain.DefaultStoryState(id); got != want {
					t.Fatalf("Get(%d) = %+v, want %+v", id, got, want)
				}
			}
		})
	}
}

func TestToggleLikeTwice(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if !store.ToggleLike(ctx, 3) {
				t.Fatal("first toggle should return true")
			}
			if store.ToggleLike(ctx, 3) {
				t.Fatal("second toggle should return false")
			}
			if store.Get(ctx, 3).Liked {
				t.Fatal("Get().Liked should match last toggle")
			}
		})
	}
}

func TestUpdateLastViewedIndex(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, k := range []int{0, 1, 4, 99} {
				store.UpdateLastViewedIndex(ctx, 2, k)
				if got := store.Get(ctx, 2).LastViewedIndex; got != k {
					t.Fatalf("LastViewedIndex = %d, want %d", got, k)
				}
			}

			store.UpdateLastViewedIndex(ctx, 2, -1)
			if got := store.Get(ctx, 2).LastViewedIndex; got != 0 {
				t.Fatalf("negative index stored as %d, want 0", got)
			}
		})
	}
}

func TestToggleLikeOnUnknownUser(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if !store.ToggleLike(ctx, 7) {
				t.Fatal("ToggleLike(7) = false, want true")
			}
			want := domain.UserStoryState{UserID: 7, Seen: false, Liked: true, LastViewedIndex: 0}
			if got := store.Get(ctx, 7); got != want {
				t.Fatalf("Get(7) = %+v, want %+v", got, want)
			}
		})
	}
}

func TestSaveAndMarkSeen(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store.Save(ctx, domain.UserStoryState{UserID: 9, Liked: true, LastViewedIndex: 2})
			store.MarkSeen(ctx, 9)

			want := domain.UserStoryState{UserID: 9, Seen: true, Liked: true, LastViewedIndex: 2}
			if got := store.Get(ctx, 9); got != want {
				t.Fatalf("Get(9) = %+v, want %+v", got, want)
			}
		})
	}
}

func TestFailuresAreAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_storystate.NewMockRepository(ctrl)
	store := New(Opts{Repo: repo, Logger: logger.NewNop()})
	ctx := context.Background()

	repo.EXPECT().Get(gomock.Any(), 5).Return(nil, storystate.ErrDecode)
	if got := store.Get(ctx, 5); got != domain.DefaultStoryState(5) {
		t.Fatalf("Get on decode failure = %+v", got)
	}

	saveErr := errors.Join(errors.New("disk full"), storystate.ErrCannotSave)
	repo.EXPECT().MarkSeen(gomock.Any(), 5).Return(saveErr)
	store.MarkSeen(ctx, 5)

	repo.EXPECT().SetLastViewedIndex(gomock.Any(), 5, 1).Return(saveErr)
	store.UpdateLastViewedIndex(ctx, 5, 1)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(saveErr)
	store.Save(ctx, domain.DefaultStoryState(5))

	repo.EXPECT().ToggleLike(gomock.Any(), 5).Return(false, saveErr)
	repo.EXPECT().Get(gomock.Any(), 5).Return(nil, storystate.ErrNotFound)
	if !store.ToggleLike(ctx, 5) {
		t.Fatal("failed toggle should still report the flipped value")
	}
}

func TestGetLogsReadAndDecodeFailuresApart(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{name: "decode", repoErr: storystate.ErrDecode, wantCode: apperrors.CodeDecodeFailure},
		{name: "read", repoErr: errors.Join(errors.New("connection refused"), storystate.ErrCannotRead), wantCode: apperrors.CodeReadFailure},
		{name: "missing", repoErr: storystate.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(logger.Opts{Production: true, Writer: &buf, Level: slog.LevelWarn})
			repo := mock_storystate.NewMockRepository(gomock.NewController(t))
			store := New(Opts{Repo: repo, Logger: log})

			repo.EXPECT().Get(gomock.Any(), 6).Return(nil, tt.repoErr)
			if got := store.Get(context.Background(), 6); got != domain.DefaultStoryState(6) {
				t.Fatalf("Get() = %+v, want defaults", got)
			}

			if tt.wantCode == "" {
				if buf.Len() != 0 {
					t.Fatalf("unexpected log output %q", buf.String())
				}
				return
			}
			var record map[string]any
			line := strings.TrimSpace(buf.String())
			if err := json.Unmarshal([]byte(line), &record); err != nil {
				t.Fatalf("decode log line %q: %v", line, err)
			}
			if record["code"] != tt.wantCode {
				t.Fatalf("code = %v, want %s", record["code"], tt.wantCode)
			}
		})
	}
}
