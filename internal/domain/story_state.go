package domain

// UserStoryState is the persisted per-user view/like record.
type UserStoryState struct {
	UserID          int  `json:"userId"`
	Seen            bool `json:"seen"`
	Liked           bool `json:"liked"`
	LastViewedIndex int  `json:"lastViewedIndex"`
}

func DefaultStoryState(userID int) UserStoryState {
	return UserStoryState{UserID: userID}
}
