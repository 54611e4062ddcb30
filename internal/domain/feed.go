package domain

// FeedItem joins a user with their story and persisted state.
type FeedItem struct {
	User  User
	Story Story
	State UserStoryState
}
