package mediaimpl

import (
	"context"
	"strings"
	"testing"
)

func TestPicsumCountWithinRange(t *testing.T) {
	p := NewPicsumResolver("https://picsum.photos/400/800", 1, 5)

	for i := 0; i < 200; i++ {
		urls, err := p.GetStoryImages(context.Background(), 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(urls) < 1 || len(urls) > 5 {
			t.Fatalf("len(urls) = %d, want 1..5", len(urls))
		}
	}
}

func TestPicsumURLsAreStablePerUserAndIndex(t *testing.T) {
	p := NewPicsumResolver("https://picsum.photos/400/800", 3, 3)

	first, _ := p.GetStoryImages(context.Background(), 8)
	second, _ := p.GetStoryImages(context.Background(), 8)
	other, _ := p.GetStoryImages(context.Background(), 9)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("url %d changed between calls: %q vs %q", i, first[i], second[i])
		}
		if first[i] == other[i] {
			t.Fatalf("users 8 and 9 share url %q", first[i])
		}
		if !strings.HasPrefix(first[i], "https://picsum.photos/400/800?random=") {
			t.Fatalf("unexpected url %q", first[i])
		}
	}
	if first[0] == first[1] {
		t.Fatal("indices of one story should differ")
	}
}

func TestPicsumHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewPicsumResolver("x", 1, 5).GetStoryImages(ctx, 1); err == nil {
		t.Fatal("expected context error")
	}
}
