package domain

import "testing"

func TestCurrentImageURL(t *testing.T) {
	story := Story{UserID: 1, ImageURLs: []string{"a", "b"}}

	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{index: 0, want: "a", wantOK: true},
		{index: 1, want: "b", wantOK: true},
		{index: 2, want: "", wantOK: false},
		{index: -1, want: "", wantOK: false},
	}
	for _, tt := range tests {
		story.CurrentIndex = tt.index
		got, ok := story.CurrentImageURL()
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("index %d: got (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLastIndex(t *testing.T) {
	if got := (Story{}).LastIndex(); got != 0 {
		t.Fatalf("empty story LastIndex = %d", got)
	}
	if got := (Story{ImageURLs: []string{"a", "b", "c"}}).LastIndex(); got != 2 {
		t.Fatalf("LastIndex = %d, want 2", got)
	}
}

func TestDefaultStoryState(t *testing.T) {
	want := UserStoryState{UserID: 7}
	if got := DefaultStoryState(7); got != want {
		t.Fatalf("DefaultStoryState(7) = %+v", got)
	}
}
