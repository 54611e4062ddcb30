package storystate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/orgball2608/insta-story-player/internal/domain"
	"github.com/orgball2608/insta-story-player/internal/repositories"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

// SqliteRepository keeps story states in an embedded sqlite table.
type SqliteRepository struct {
	db     *sql.DB
	stmts  statements
	logger logger.Logger
}

func NewSqliteRepository(db *sql.DB, logger logger.Logger) *SqliteRepository {
	return &SqliteRepository{
		db:     db,
		stmts:  statements{builder: repositories.SqliteBuilder, now: time.Now},
		logger: logger.WithComponent("StoryStateSqliteRepo"),
	}
}

var _ Repository = (*SqliteRepository)(nil)

func (r *SqliteRepository) Get(ctx context.Context, userID int) (*domain.UserStoryState, error) {
	query, args, err := r.stmts.selectByUserID(userID)
	if err != nil {
		return nil, err
	}

	var row rowValues
	err = r.db.QueryRowContext(ctx, query, args...).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(fmt.Errorf("failed to get story state %d: %w", userID, err), ErrCannotRead)
	}

	return row.decode(userID)
}

func (r *SqliteRepository) Upsert(ctx context.Context, state domain.UserStoryState) error {
	query, args, err := r.stmts.upsert(state)
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *SqliteRepository) MarkSeen(ctx context.Context, userID int) error {
	query, args, err := r.stmts.markSeen(userID)
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *SqliteRepository) ToggleLike(ctx context.Context, userID int) (bool, error) {
	query, args, err := r.stmts.toggleLike(userID)
	if err != nil {
		return false, err
	}

	var liked bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&liked); err != nil {
		return false, errors.Join(err, ErrCannotSave)
	}
	return liked, nil
}

func (r *SqliteRepository) SetLastViewedIndex(ctx context.Context, userID int, index int) error {
	query, args, err := r.stmts.setLastViewedIndex(userID, index)
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *SqliteRepository) exec(ctx context.Context, query string, args []any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotSave)
	}
	return nil
}
