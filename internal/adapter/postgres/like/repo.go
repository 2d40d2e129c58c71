// Package like implements the term like repository using PostgreSQL.
package like

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
)

const table = "likes"

// Repo provides like persistence. A like is identified by (user, term).
type Repo struct {
	db postgres.Querier
}

// New creates a new like repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Exists reports whether userID likes termID.
func (r *Repo) Exists(ctx context.Context, userID, termID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := postgres.Get(ctx, q, &exists, postgres.Builder().
		Select().
		Column(sq.Expr("EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND term_id = ?)", userID, termID)))
	if err != nil {
		return false, postgres.MapError(err, "like", termID)
	}
	return exists, nil
}

// Insert records a like. A second like of the same term yields
// ErrAlreadyExists, an unknown term ErrNotFound.
func (r *Repo) Insert(ctx context.Context, userID, termID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Insert(table).
		Columns("user_id", "term_id").
		Values(userID, termID))
	if err != nil {
		return postgres.MapError(err, "like", termID)
	}
	return nil
}

// Delete removes a like and reports whether one existed.
func (r *Repo) Delete(ctx context.Context, userID, termID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID, "term_id": termID}))
	if err != nil {
		return false, postgres.MapError(err, "like", termID)
	}
	return n > 0, nil
}

// Count returns the number of likes on a term.
func (r *Repo) Count(ctx context.Context, termID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int64
	err := postgres.Get(ctx, q, &n, postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"term_id": termID}))
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", postgres.MapError(err, "like", termID))
	}
	return int(n), nil
}
