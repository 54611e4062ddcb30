package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestAllowRespectsBurstPerKey(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("burst of 2 should be allowed")
	}
	if l.Allow("a") {
		t.Fatal("third call within the hour should be throttled")
	}
	if !l.Allow("b") {
		t.Fatal("keys must not share a bucket")
	}
}

func TestWaitHonoursContext(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)
	_ = l.Allow("k")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "k"); err == nil {
		t.Fatal("Wait should fail once the bucket is empty and ctx expires")
	}
}
