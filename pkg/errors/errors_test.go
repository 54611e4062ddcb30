package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSourceUnavailableMatchesSentinel(t *testing.T) {
	cause := errors.New("open users.json: no such file")
	err := fmt.Errorf("get stories page 2: %w", SourceUnavailable(cause))

	if !IsSourceUnavailable(err) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to stay in the chain")
	}
	if got := GetCode(err); got != CodeSourceUnavailable {
		t.Fatalf("code = %q, want %q", got, CodeSourceUnavailable)
	}
	if errors.Is(err, ErrDecodeFailure) {
		t.Fatal("source unavailable must not match decode failure")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "x") != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	if WrapWithCode(nil, CodePersistFailure, "x") != nil {
		t.Fatal("WrapWithCode(nil) should be nil")
	}
}

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: "boom"},
		{name: "coded", err: WrapWithCode(errors.New("disk full"), CodePersistFailure, "save story states"), want: "save story states"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.err); got != tt.want {
				t.Fatalf("GetMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrappedSentinels(t *testing.T) {
	missing := Wrap(ErrNotFound, "session not found")
	closed := Wrap(ErrServiceUnavailable, "player is closed")

	if !IsNotFound(fmt.Errorf("do: %w", missing)) {
		t.Fatal("expected not found through wrapping")
	}
	if !IsServiceUnavailable(closed) || IsNotFound(closed) {
		t.Fatalf("closed classified wrong: %v", closed)
	}
	if !Is(missing, missing) {
		t.Fatal("wrapped sentinel must match itself")
	}
	if Is(missing, ErrInvalidInput) {
		t.Fatal("not found must not match invalid input")
	}
}
