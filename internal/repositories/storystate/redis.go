package storystate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "story_state:"

// Hash fields of one story_state:<user id> key.
const (
	fieldSeen            = "seen"
	fieldLiked           = "liked"
	fieldLastViewedIndex = "last_viewed_index"
)

var toggleLikeScript = redis.NewScript(`
local liked = redis.call('HGET', KEYS[1], 'liked')
if liked == '1' then
	redis.call('HSET', KEYS[1], 'liked', '0')
	return 0
end
redis.call('HSET', KEYS[1], 'liked', '1')
return 1
`)

// RedisRepository keeps one hash per user.
type RedisRepository struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisRepository(client *redis.Client, logger logger.Logger) *RedisRepository {
	return &RedisRepository{
		client: client,
		logger: logger.WithComponent("StoryStateRedisRepo"),
	}
}

var _ Repository = (*RedisRepository)(nil)

func redisKey(userID int) string {
	return redisKeyPrefix + strconv.Itoa(userID)
}

func (r *RedisRepository) Get(ctx context.Context, userID int) (*domain.UserStoryState, error) {
	fields, err := r.client.HGetAll(ctx, redisKey(userID)).Result()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to get story state %d: %w", userID, err), ErrCannotRead)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return decodeRedisState(userID, fields)
}

func decodeRedisState(userID int, fields map[string]string) (*domain.UserStoryState, error) {
	state := domain.DefaultStoryState(userID)

	var err error
	if v, ok := fields[fieldSeen]; ok {
		if state.Seen, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: field %s of user %d: %v", ErrDecode, fieldSeen, userID, err)
		}
	}
	if v, ok := fields[fieldLiked]; ok {
		if state.Liked, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: field %s of user %d: %v", ErrDecode, fieldLiked, userID, err)
		}
	}
	if v, ok := fields[fieldLastViewedIndex]; ok {
		if state.LastViewedIndex, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("%w: field %s of user %d: %v", ErrDecode, fieldLastViewedIndex, userID, err)
		}
	}

	return &state, nil
}

func (r *RedisRepository) Upsert(ctx context.Context, state domain.UserStoryState) error {
	return r.hset(ctx, state.UserID,
		fieldSeen, boolField(state.Seen),
		fieldLiked, boolField(state.Liked),
		fieldLastViewedIndex, state.LastViewedIndex,
	)
}

func (r *RedisRepository) MarkSeen(ctx context.Context, userID int) error {
	return r.hset(ctx, userID, fieldSeen, boolField(true))
}

func (r *RedisRepository) ToggleLike(ctx context.Context, userID int) (bool, error) {
	liked, err := toggleLikeScript.Run(ctx, r.client, []string{redisKey(userID)}).Int()
	if err != nil {
		return false, errors.Join(err, ErrCannotSave)
	}
	return liked == 1, nil
}

func (r *RedisRepository) SetLastViewedIndex(ctx context.Context, userID int, index int) error {
	return r.hset(ctx, userID, fieldLastViewedIndex, index)
}

func (r *RedisRepository) hset(ctx context.Context, userID int, values ...any) error {
	if err := r.client.HSet(ctx, redisKey(userID), values...).Err(); err != nil {
		return errors.Join(err, ErrCannotSave)
	}
	return nil
}

func boolField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
