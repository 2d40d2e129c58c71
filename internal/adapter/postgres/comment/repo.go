// Package comment implements the term comment repository using PostgreSQL.
package comment

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "comments"

var columns = []string{"id", "term_id", "user_id", "content", "created_at"}

// Repo provides comment persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectComments() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"c.id", "c.term_id", "c.user_id", "c.content", "c.created_at",
			"trim(u.first_name || ' ' || u.last_name) AS author_name",
		).
		From(table + " c").
		Join("users u ON u.id = c.user_id")
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row commentRow
	if err := postgres.Get(ctx, q, &row, selectComments().Where(sq.Eq{"c.id": id})); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	c := row.toDomain()
	return &c, nil
}

// ListByTerm returns the comments of a term, oldest first.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectComments().
		Where(sq.Eq{"c.term_id": termID}).
		OrderBy("c.created_at", "c.id")

	var rows []commentRow
	if err := postgres.Select(ctx, q, &rows, postgres.Page(b, limit, offset)); err != nil {
		return nil, postgres.MapError(err, "comment", termID)
	}

	out := make([]domain.Comment, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a comment. An unknown term yields ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.TermID, c.UserID, c.Content, c.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// Delete removes a comment.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "comment", id)
	}
	return nil
}

type commentRow struct {
	ID         uuid.UUID `db:"id"`
	TermID     uuid.UUID `db:"term_id"`
	UserID     uuid.UUID `db:"user_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
	AuthorName string    `db:"author_name"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:         r.ID,
		TermID:     r.TermID,
		UserID:     r.UserID,
		Content:    r.Content,
		CreatedAt:  r.CreatedAt,
		AuthorName: r.AuthorName,
	}
}
