package domain

import "time"

// Story is the ordered sequence of images one user currently shows.
// It is built fresh for every page fetch; only the cursor survives, through UserStoryState.
type Story struct {
	UserID       int
	ImageURLs    []string
	CurrentIndex int
	CreatedAt    time.Time
}

// CurrentImageURL returns the image under the cursor, or false when the cursor is out of range.
func (s Story) CurrentImageURL() (string, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.ImageURLs) {
		return "", false
	}
	return s.ImageURLs[s.CurrentIndex], true
}

// LastIndex is the index of the final image, 0 for an empty story.
func (s Story) LastIndex() int {
	if len(s.ImageURLs) == 0 {
		return 0
	}
	return len(s.ImageURLs) - 1
}
