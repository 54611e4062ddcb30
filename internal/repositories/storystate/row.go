package storystate

import (
	"fmt"
	"strconv"

	"github.com/orgball2608/insta-story-player/internal/domain"
)

// rowValues receives a story_states row as the driver returns it. Conversion happens in
// decode, so a malformed value is reported as ErrDecode and not as a query failure.
type rowValues struct {
	userID          any
	seen            any
	liked           any
	lastViewedIndex any
}

func (v *rowValues) dest() []any {
	return []any{&v.userID, &v.seen, &v.liked, &v.lastViewedIndex}
}

func (v rowValues) decode(userID int) (*domain.UserStoryState, error) {
	id, err := intValue(v.userID)
	if err != nil {
		return nil, fmt.Errorf("%w: column user_id of user %d: %v", ErrDecode, userID, err)
	}
	seen, err := boolValue(v.seen)
	if err != nil {
		return nil, fmt.Errorf("%w: column seen of user %d: %v", ErrDecode, userID, err)
	}
	liked, err := boolValue(v.liked)
	if err != nil {
		return nil, fmt.Errorf("%w: column liked of user %d: %v", ErrDecode, userID, err)
	}
	index, err := intValue(v.lastViewedIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: column last_viewed_index of user %d: %v", ErrDecode, userID, err)
	}

	return &domain.UserStoryState{
		UserID:          int(id),
		Seen:            seen,
		Liked:           liked,
		LastViewedIndex: int(index),
	}, nil
}

func intValue(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case int:
		return int64(x), nil
	case []byte:
		return strconv.ParseInt(string(x), 10, 64)
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}

func boolValue(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int64, int32, int:
		n, _ := intValue(x)
		return n != 0, nil
	case []byte:
		return strconv.ParseBool(string(x))
	case string:
		return strconv.ParseBool(x)
	default:
		return false, fmt.Errorf("unexpected %T", v)
	}
}
