package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/insta-story-player/internal/domain"
	mock_stories "github.com/orgball2608/insta-story-player/internal/stories/mocks"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newController(t *testing.T) (*Controller, *mock_stories.MockClient) {
	t.Helper()
	client := mock_stories.NewMockClient(gomock.NewController(t))
	cfg := &config.Config{}
	cfg.Feed.LookAhead = 3
	return New(Opts{Stories: client, Config: cfg, Logger: logger.NewNop()}), client
}

func page(ids ...int) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.FeedItem{
			User:  domain.User{ID: id},
			Story: domain.Story{UserID: id, ImageURLs: []string{"a"}},
			State: domain.DefaultStoryState(id),
		})
	}
	return items
}

func ids(items []domain.FeedItem) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.User.ID)
	}
	return out
}

func TestLoadNextAppendsAndAdvancesPage(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	client.EXPECT().GetStories(gomock.Any(), 1).Return(page(1, 2), nil)
	client.EXPECT().GetStories(gomock.Any(), 2).Return(page(3, 4), nil)

	if err := c.LoadNext(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadNext(ctx); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if snap.Page != 3 || len(snap.Items) != 4 || snap.Loading {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestLoadNextWhileLoadingIsNoop(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().GetStories(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) ([]domain.FeedItem, error) {
			close(started)
			<-release
			return page(1, 2), nil
		}).Times(1)

	done := make(chan error)
	go func() { done <- c.LoadNext(ctx) }()
	<-started

	before := c.Snapshot()
	if !before.Loading {
		t.Fatal("expected loading flag during fetch")
	}
	if err := c.LoadNext(ctx); err != nil {
		t.Fatalf("reentrant LoadNext() error = %v", err)
	}
	after := c.Snapshot()
	if len(after.Items) != len(before.Items) || after.Page != before.Page {
		t.Fatalf("reentrant call changed state: %+v -> %+v", before, after)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot(); got.Page != 2 || len(got.Items) != 2 {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestFailedLoadKeepsPageAndSetsError(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	boom := errors.New("source unavailable")
	gomock.InOrder(
		client.EXPECT().GetStories(gomock.Any(), 1).Return(nil, boom),
		client.EXPECT().GetStories(gomock.Any(), 1).Return(page(1), nil),
	)

	if err := c.LoadNext(ctx); !errors.Is(err, boom) {
		t.Fatalf("LoadNext() error = %v, want %v", err, boom)
	}
	snap := c.Snapshot()
	if snap.Page != 1 || !snap.HasError || snap.ErrorMessage == "" || snap.Loading {
		t.Fatalf("after failure snapshot = %+v", snap)
	}

	if err := c.LoadNext(ctx); err != nil {
		t.Fatal(err)
	}
	snap = c.Snapshot()
	if snap.HasError || snap.ErrorMessage != "" || snap.Page != 2 {
		t.Fatalf("after retry snapshot = %+v", snap)
	}
}

func TestRefreshDeduplicatesRepeatedPage(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	client.EXPECT().GetStories(gomock.Any(), gomock.Any()).Return(page(1, 2, 3), nil).Times(3)

	if err := c.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadNext(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadNext(ctx); err != nil {
		t.Fatal(err)
	}

	seen := map[int]bool{}
	for _, id := range ids(c.Snapshot().Items) {
		if seen[id] {
			t.Fatalf("user %d appears twice", id)
		}
		seen[id] = true
	}
	if len(seen) != 3 {
		t.Fatalf("items = %v", ids(c.Snapshot().Items))
	}
}

func TestRefreshResetsState(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().GetStories(gomock.Any(), 1).Return(page(1, 2), nil),
		client.EXPECT().GetStories(gomock.Any(), 2).Return(page(3), nil),
		client.EXPECT().GetStories(gomock.Any(), 1).Return(page(2, 1), nil),
	)

	_ = c.LoadNext(ctx)
	_ = c.LoadNext(ctx)
	if err := c.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if snap.Page != 2 {
		t.Fatalf("page = %d, want 2", snap.Page)
	}
	if got := ids(snap.Items); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("items = %v, want [2 1]", got)
	}
}

func TestRefreshDiscardsInFlightLoad(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		client.EXPECT().GetStories(gomock.Any(), 1).
			DoAndReturn(func(context.Context, int) ([]domain.FeedItem, error) {
				close(started)
				<-release
				return page(10, 11), nil
			}),
		client.EXPECT().GetStories(gomock.Any(), 1).Return(page(1, 2), nil),
	)

	done := make(chan error)
	go func() { done <- c.LoadNext(ctx) }()
	<-started

	if err := c.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if got := ids(snap.Items); len(got) != 2 || got[0] != 1 {
		t.Fatalf("items = %v, want the refreshed page only", got)
	}
	if snap.Page != 2 || snap.Loading {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestLoadMoreIfNeeded(t *testing.T) {
	c, client := newController(t)
	ctx := context.Background()

	client.EXPECT().GetStories(gomock.Any(), 1).Return(page(1, 2, 3, 4, 5, 6, 7, 8), nil)
	_ = c.LoadNext(ctx)

	ran, err := c.LoadMoreIfNeeded(ctx, 2)
	if err != nil || ran {
		t.Fatalf("LoadMoreIfNeeded(2) = %v, %v; want no load", ran, err)
	}

	client.EXPECT().GetStories(gomock.Any(), 2).Return(page(9), nil)
	ran, err = c.LoadMoreIfNeeded(ctx, 6)
	if err != nil || !ran {
		t.Fatalf("LoadMoreIfNeeded(6) = %v, %v; want load", ran, err)
	}
	if got := len(c.Snapshot().Items); got != 9 {
		t.Fatalf("len(items) = %d, want 9", got)
	}
}

func TestLoadMoreIfNeededOnEmptyFeed(t *testing.T) {
	c, client := newController(t)

	client.EXPECT().GetStories(gomock.Any(), 1).Return(page(1), nil)
	ran, err := c.LoadMoreIfNeeded(context.Background(), 99)
	if err != nil || !ran {
		t.Fatalf("LoadMoreIfNeeded() = %v, %v", ran, err)
	}
}

func TestScheduleRefresh(t *testing.T) {
	c, client := newController(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshed := make(chan struct{}, 8)
	client.EXPECT().GetStories(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) ([]domain.FeedItem, error) {
			refreshed <- struct{}{}
			return page(1), nil
		}).MinTimes(1)

	if err := c.ScheduleRefresh(ctx, 50*time.Millisecond); err != nil {
		t.Fatalf("ScheduleRefresh() error = %v", err)
	}

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled refresh never ran")
	}
	cancel()
}
