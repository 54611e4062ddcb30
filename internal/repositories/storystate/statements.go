package storystate

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/repositories"
)

const tableStoryStates = "story_states"

var insertColumns = []string{"user_id", "seen", "liked", "last_viewed_index", "updated_at"}

// statements builds the SQL shared by the sqlite and postgres backends; only the
// placeholder format differs.
type statements struct {
	builder sq.StatementBuilderType
	now     func() time.Time
}

func (s statements) selectByUserID(userID int) (string, []any, error) {
	query, args, err := s.builder.
		Select("user_id", "seen", "liked", "last_viewed_index").
		From(tableStoryStates).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, repositories.ErrBadQuery
	}
	return query, args, nil
}

func (s statements) insert(state domain.UserStoryState, onConflict string) (string, []any, error) {
	query, args, err := s.builder.
		Insert(tableStoryStates).
		Columns(insertColumns...).
		Values(state.UserID, state.Seen, state.Liked, state.LastViewedIndex, s.now().UnixMilli()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + onConflict).
		ToSql()
	if err != nil {
		return "", nil, repositories.ErrBadQuery
	}
	return query, args, nil
}

func (s statements) upsert(state domain.UserStoryState) (string, []any, error) {
	return s.insert(state, "seen = excluded.seen, liked = excluded.liked, "+
		"last_viewed_index = excluded.last_viewed_index, updated_at = excluded.updated_at")
}

func (s statements) markSeen(userID int) (string, []any, error) {
	state := domain.DefaultStoryState(userID)
	state.Seen = true
	return s.insert(state, "seen = excluded.seen, updated_at = excluded.updated_at")
}

func (s statements) toggleLike(userID int) (string, []any, error) {
	state := domain.DefaultStoryState(userID)
	state.Liked = true
	return s.insert(state, "liked = NOT "+tableStoryStates+".liked, updated_at = excluded.updated_at RETURNING liked")
}

func (s statements) setLastViewedIndex(userID, index int) (string, []any, error) {
	state := domain.DefaultStoryState(userID)
	state.LastViewedIndex = index
	return s.insert(state, "last_viewed_index = excluded.last_viewed_index, updated_at = excluded.updated_at")
}
