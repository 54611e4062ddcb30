package storystate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/repositories"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	stmts  statements
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		stmts:  statements{builder: repositories.SqBuilder, now: time.Now},
		logger: logger.WithComponent("StoryStatePgxRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Get(ctx context.Context, userID int) (*domain.UserStoryState, error) {
	query, args, err := r.stmts.selectByUserID(userID)
	if err != nil {
		return nil, err
	}

	var row rowValues
	err = r.pool.QueryRow(ctx, query, args...).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(fmt.Errorf("failed to get story state %d: %w", userID, err), ErrCannotRead)
	}

	return row.decode(userID)
}

func (r *PgxRepository) Upsert(ctx context.Context, state domain.UserStoryState) error {
	query, args, err := r.stmts.upsert(state)
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *PgxRepository) MarkSeen(ctx context.Context, userID int) error {
	query, args, err := r.stmts.markSeen(userID)
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *PgxRepository) ToggleLike(ctx context.Context, userID int) (bool, error) {
	query, args, err := r.stmts.toggleLike(userID)
	if err != nil {
		return false, err
	}

	var liked bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&liked); err != nil {
		return false, errors.Join(err, ErrCannotSave)
	}
	return liked, nil
}

func (r *PgxRepository) SetLastViewedIndex(ctx context.Context, userID int, index int) error {
	query, args, err := r.stmts.setLastViewedIndex(userID, index)
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *PgxRepository) exec(ctx context.Context, query string, args []any) error {
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotSave)
	}
	return nil
}
