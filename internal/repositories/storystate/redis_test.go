package storystate

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client, logger.NewNop()), srv
}

func TestDecodeRedisState(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		want    domain.UserStoryState
		wantErr bool
	}{
		{
			name:   "all fields",
			fields: map[string]string{fieldSeen: "1", fieldLiked: "0", fieldLastViewedIndex: "3"},
			want:   domain.UserStoryState{UserID: 5, Seen: true, LastViewedIndex: 3},
		},
		{
			name:   "missing fields default",
			fields: map[string]string{fieldLiked: "1"},
			want:   domain.UserStoryState{UserID: 5, Liked: true},
		},
		{
			name:    "malformed liked",
			fields:  map[string]string{fieldLiked: "maybe"},
			wantErr: true,
		},
		{
			name:    "malformed index",
			fields:  map[string]string{fieldLastViewedIndex: "two"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeRedisState(5, tt.fields)
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Fatalf("decodeRedisState() error = %v, want ErrDecode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRedisState() error = %v", err)
			}
			if *got != tt.want {
				t.Fatalf("decodeRedisState() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestRedisToggleLikeCreatesRecord(t *testing.T) {
	repo, srv := newRedisRepo(t)
	ctx := context.Background()

	if _, err := repo.Get(ctx, 11); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}

	for i, want := range []bool{true, false} {
		liked, err := repo.ToggleLike(ctx, 11)
		if err != nil {
			t.Fatalf("ToggleLike() #%d error = %v", i+1, err)
		}
		if liked != want {
			t.Fatalf("ToggleLike() #%d = %v, want %v", i+1, liked, want)
		}
	}

	if got := srv.HGet(redisKey(11), fieldLiked); got != "0" {
		t.Fatalf("stored liked = %q, want 0", got)
	}
	state, err := repo.Get(ctx, 11)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if *state != domain.DefaultStoryState(11) {
		t.Fatalf("Get() = %+v, want defaults", *state)
	}
}

func TestRedisFieldUpdates(t *testing.T) {
	repo, _ := newRedisRepo(t)
	ctx := context.Background()

	if err := repo.MarkSeen(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetLastViewedIndex(ctx, 2, 4); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Get(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := domain.UserStoryState{UserID: 2, Seen: true, LastViewedIndex: 4}
	if *got != want {
		t.Fatalf("Get() = %+v, want %+v", *got, want)
	}

	want = domain.UserStoryState{UserID: 2, Liked: true, LastViewedIndex: 1}
	if err := repo.Upsert(ctx, want); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.Get(ctx, 2); *got != want {
		t.Fatalf("Get() after Upsert = %+v, want %+v", *got, want)
	}
}

func TestRedisMalformedHash(t *testing.T) {
	repo, srv := newRedisRepo(t)

	srv.HSet(redisKey(3), fieldLiked, "maybe")

	if _, err := repo.Get(context.Background(), 3); !errors.Is(err, ErrDecode) {
		t.Fatalf("Get() error = %v, want ErrDecode", err)
	}
}

func TestRedisUnreachable(t *testing.T) {
	repo, srv := newRedisRepo(t)
	srv.Close()

	_, err := repo.Get(context.Background(), 1)
	if !errors.Is(err, ErrCannotRead) || errors.Is(err, ErrDecode) {
		t.Fatalf("Get() error = %v, want ErrCannotRead only", err)
	}
	if _, err := repo.ToggleLike(context.Background(), 1); !errors.Is(err, ErrCannotSave) {
		t.Fatalf("ToggleLike() error = %v, want ErrCannotSave", err)
	}
}
