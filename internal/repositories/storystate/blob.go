package storystate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

// StoryStatesKey is the single key the whole collection is stored under.
const StoryStatesKey = "storyStates"

// ByteStore is a process-local key-value byte store.
type ByteStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryByteStore is an in-memory ByteStore.
type MemoryByteStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryByteStore() *MemoryByteStore {
	return &MemoryByteStore{data: map[string][]byte{}}
}

func (s *MemoryByteStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *MemoryByteStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	return nil
}

// BlobRepository serializes every record into one JSON array under StoryStatesKey.
// Every mutation rewrites the whole blob; the mutex keeps read-modify-write cycles from interleaving.
type BlobRepository struct {
	mu     sync.Mutex
	store  ByteStore
	logger logger.Logger
}

func NewBlobRepository(store ByteStore, logger logger.Logger) *BlobRepository {
	return &BlobRepository{
		store:  store,
		logger: logger.WithComponent("StoryStateBlobRepo"),
	}
}

var _ Repository = (*BlobRepository)(nil)

func (r *BlobRepository) Get(ctx context.Context, userID int) (*domain.UserStoryState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	states, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, state := range states {
		if state.UserID == userID {
			return &state, nil
		}
	}
	return nil, ErrNotFound
}

func (r *BlobRepository) Upsert(ctx context.Context, state domain.UserStoryState) error {
	_, err := r.update(ctx, state.UserID, func(s *domain.UserStoryState) {
		*s = state
	})
	return err
}

func (r *BlobRepository) MarkSeen(ctx context.Context, userID int) error {
	_, err := r.update(ctx, userID, func(s *domain.UserStoryState) {
		s.Seen = true
	})
	return err
}

func (r *BlobRepository) ToggleLike(ctx context.Context, userID int) (bool, error) {
	state, err := r.update(ctx, userID, func(s *domain.UserStoryState) {
		s.Liked = !s.Liked
	})
	if err != nil {
		return false, err
	}
	return state.Liked, nil
}

func (r *BlobRepository) SetLastViewedIndex(ctx context.Context, userID int, index int) error {
	_, err := r.update(ctx, userID, func(s *domain.UserStoryState) {
		s.LastViewedIndex = index
	})
	return err
}

func (r *BlobRepository) update(ctx context.Context, userID int, mutate func(*domain.UserStoryState)) (domain.UserStoryState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	states, err := r.loadAll(ctx)
	if err != nil {
		if !errors.Is(err, ErrDecode) {
			return domain.UserStoryState{}, err
		}
		r.logger.Warn("Discarding undecodable story states", "error", err)
		states = nil
	}

	idx := -1
	for i := range states {
		if states[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		states = append(states, domain.DefaultStoryState(userID))
		idx = len(states) - 1
	}

	mutate(&states[idx])
	states[idx].UserID = userID

	if err := r.saveAll(ctx, states); err != nil {
		return domain.UserStoryState{}, err
	}
	return states[idx], nil
}

func (r *BlobRepository) loadAll(ctx context.Context) ([]domain.UserStoryState, error) {
	data, ok, err := r.store.Get(ctx, StoryStatesKey)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to read story states: %w", err), ErrCannotRead)
	}
	if !ok {
		return nil, nil
	}

	var states []domain.UserStoryState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return states, nil
}

func (r *BlobRepository) saveAll(ctx context.Context, states []domain.UserStoryState) error {
	data, err := json.Marshal(states)
	if err != nil {
		return errors.Join(err, ErrCannotSave)
	}
	if err := r.store.Set(ctx, StoryStatesKey, data); err != nil {
		return errors.Join(err, ErrCannotSave)
	}
	return nil
}
