// Package term implements the Term repository using PostgreSQL.
package term

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "terms"

var baseColumns = []string{
	"id", "title", "definition", "category_id", "author_id", "status",
	"examples", "sources", "remarks", "created_at", "updated_at",
}

// readColumns adds the author name, category label and like count.
var readColumns = append(qualify("t", baseColumns),
	"trim(u.first_name || ' ' || u.last_name) AS author_name",
	"COALESCE(c.label, '') AS category_label",
	"(SELECT count(*) FROM likes l WHERE l.term_id = t.id) AS like_count",
)

var returning = "RETURNING " + strings.Join(baseColumns, ", ")

// Repo provides term persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new term repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectTerms() sq.SelectBuilder {
	return postgres.Builder().
		Select(readColumns...).
		From(table + " t").
		Join("users u ON u.id = t.author_id").
		LeftJoin("categories c ON c.id = t.category_id")
}

// GetByID returns a term with its read-model fields.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row termRow
	if err := postgres.Get(ctx, q, &row, selectTerms().Where(sq.Eq{"t.id": id})); err != nil {
		return nil, postgres.MapError(err, "term", id)
	}

	t := row.toDomain()
	return &t, nil
}

// List returns terms matching the filter.
func (r *Repo) List(ctx context.Context, f domain.TermFilter) ([]domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := applyFilter(selectTerms(), f).OrderBy(orderBy(f))
	b = postgres.Page(b, f.Limit, f.Offset)

	var rows []termRow
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "term", uuid.Nil)
	}

	out := make([]domain.Term, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a term. An unknown category yields ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row termRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert(table).
		Columns(baseColumns...).
		Values(
			t.ID, t.Title, t.Definition, t.CategoryID, t.AuthorID, string(t.Status),
			t.Examples, t.Sources, t.Remarks, t.CreatedAt, t.UpdatedAt,
		).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "term", t.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update applies a partial update and returns the new row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, c domain.TermChanges) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	set := func(col string, v *string) {
		if v != nil {
			b = b.Set(col, *v)
		}
	}
	set("title", c.Title)
	set("definition", c.Definition)
	set("examples", c.Examples)
	set("sources", c.Sources)
	set("remarks", c.Remarks)
	switch {
	case c.ClearCategory:
		b = b.Set("category_id", nil)
	case c.CategoryID != nil:
		b = b.Set("category_id", *c.CategoryID)
	}
	if c.Status != nil {
		b = b.Set("status", string(*c.Status))
	}

	var row termRow
	if err := postgres.Get(ctx, q, &row, b); err != nil {
		return nil, postgres.MapError(err, "term", id)
	}

	out := row.toDomain()
	return &out, nil
}

// UpdateStatus rewrites the status of a term.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TermStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "term", id)
	}
	return nil
}

// Delete removes a term together with its dependent rows.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "term", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type termRow struct {
	ID            uuid.UUID  `db:"id"`
	Title         string     `db:"title"`
	Definition    string     `db:"definition"`
	CategoryID    *uuid.UUID `db:"category_id"`
	AuthorID      uuid.UUID  `db:"author_id"`
	Status        string     `db:"status"`
	Examples      string     `db:"examples"`
	Sources       string     `db:"sources"`
	Remarks       string     `db:"remarks"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	AuthorName    string     `db:"author_name"`
	CategoryLabel string     `db:"category_label"`
	LikeCount     int64      `db:"like_count"`
}

func (r termRow) toDomain() domain.Term {
	status, ok := domain.NormalizeTermStatus(r.Status)
	if !ok {
		status = domain.TermStatus(r.Status)
	}
	return domain.Term{
		ID:            r.ID,
		Title:         r.Title,
		Definition:    r.Definition,
		CategoryID:    r.CategoryID,
		AuthorID:      r.AuthorID,
		Status:        status,
		Examples:      r.Examples,
		Sources:       r.Sources,
		Remarks:       r.Remarks,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		AuthorName:    r.AuthorName,
		CategoryLabel: r.CategoryLabel,
		LikeCount:     int(r.LikeCount),
	}
}

func qualify(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
