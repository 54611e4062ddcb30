package storystate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (failingStore) Set(context.Context, string, []byte) error         { return errors.New("disk full") }

type unreadableStore struct {
	*MemoryByteStore
}

func (unreadableStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("i/o timeout")
}

func TestBlobRepositoryKeepsOneRecordPerUser(t *testing.T) {
	store := NewMemoryByteStore()
	repo := NewBlobRepository(store, logger.NewNop())
	ctx := context.Background()

	if err := repo.MarkSeen(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.ToggleLike(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetLastViewedIndex(ctx, 2, 4); err != nil {
		t.Fatal(err)
	}

	raw, ok, _ := store.Get(ctx, StoryStatesKey)
	if !ok {
		t.Fatal("expected blob to be written")
	}
	var states []domain.UserStoryState
	if err := json.Unmarshal(raw, &states); err != nil {
		t.Fatalf("blob is not a JSON array: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("len(states) = %d, want 2", len(states))
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := (domain.UserStoryState{UserID: 1, Seen: true, Liked: true}); *got != want {
		t.Fatalf("Get(1) = %+v, want %+v", *got, want)
	}
}

func TestBlobRepositoryCorruptBlob(t *testing.T) {
	store := NewMemoryByteStore()
	_ = store.Set(context.Background(), StoryStatesKey, []byte("{not json"))
	repo := NewBlobRepository(store, logger.NewNop())
	ctx := context.Background()

	if _, err := repo.Get(ctx, 1); !errors.Is(err, ErrDecode) {
		t.Fatalf("Get() error = %v, want ErrDecode", err)
	}

	liked, err := repo.ToggleLike(ctx, 1)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if !liked {
		t.Fatal("toggle on a discarded collection should start from the default")
	}
	if _, err := repo.Get(ctx, 1); err != nil {
		t.Fatalf("Get() after rewrite error = %v", err)
	}
}

func TestBlobRepositorySaveFailure(t *testing.T) {
	repo := NewBlobRepository(failingStore{}, logger.NewNop())

	err := repo.MarkSeen(context.Background(), 1)
	if !errors.Is(err, ErrCannotSave) {
		t.Fatalf("MarkSeen() error = %v, want ErrCannotSave", err)
	}
}

func TestBlobReadFailureIsNotDecodeFailure(t *testing.T) {
	store := unreadableStore{MemoryByteStore: NewMemoryByteStore()}
	repo := NewBlobRepository(store, logger.NewNop())
	ctx := context.Background()

	_, err := repo.Get(ctx, 1)
	if !errors.Is(err, ErrCannotRead) || errors.Is(err, ErrDecode) {
		t.Fatalf("Get() error = %v, want ErrCannotRead only", err)
	}

	if _, err := repo.ToggleLike(ctx, 1); !errors.Is(err, ErrCannotRead) {
		t.Fatalf("ToggleLike() error = %v, want ErrCannotRead", err)
	}
	if _, ok, _ := store.MemoryByteStore.Get(ctx, StoryStatesKey); ok {
		t.Fatal("an unreadable store must not be overwritten")
	}
}
