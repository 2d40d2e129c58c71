// Package decision implements the Decision repository using PostgreSQL.
package decision

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "decisions"

var baseColumns = []string{"id", "term_id", "user_id", "decision_type", "comment", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(baseColumns, ", ")

// Repo provides decision persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new decision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectDecisions() sq.SelectBuilder {
	cols := make([]string, 0, len(baseColumns)+2)
	for _, c := range baseColumns {
		cols = append(cols, "d."+c)
	}
	cols = append(cols,
		"trim(u.first_name || ' ' || u.last_name) AS decider_name",
		"t.title AS term_title",
	)
	return postgres.Builder().
		Select(cols...).
		From(table + " d").
		Join("users u ON u.id = d.user_id").
		Join("terms t ON t.id = d.term_id")
}

// GetByID returns a decision.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Decision, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row decisionRow
	if err := postgres.Get(ctx, q, &row, selectDecisions().Where(sq.Eq{"d.id": id})); err != nil {
		return nil, postgres.MapError(err, "decision", id)
	}

	d := row.toDomain()
	return &d, nil
}

// List returns decisions, newest first, optionally for one term.
func (r *Repo) List(ctx context.Context, termID *uuid.UUID, limit, offset int) ([]domain.Decision, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectDecisions().OrderBy("d.created_at DESC", "d.id")
	if termID != nil {
		b = b.Where(sq.Eq{"d.term_id": *termID})
	}
	b = postgres.Page(b, limit, offset)

	var rows []decisionRow
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "decision", uuid.Nil)
	}

	out := make([]domain.Decision, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a decision. An unknown term yields ErrNotFound.
func (r *Repo) Create(ctx context.Context, d *domain.Decision) (*domain.Decision, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row decisionRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert(table).
		Columns(baseColumns...).
		Values(d.ID, d.TermID, d.UserID, string(d.Type), d.Comment, d.CreatedAt, d.UpdatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "decision", d.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update changes the type and comment of a decision.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, typ domain.DecisionType, comment string) (*domain.Decision, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row decisionRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Update(table).
		Set("decision_type", string(typ)).
		Set("comment", comment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "decision", id)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a decision. The term keeps its current status.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "decision", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "decision", id)
	}
	return nil
}

type decisionRow struct {
	ID          uuid.UUID `db:"id"`
	TermID      uuid.UUID `db:"term_id"`
	UserID      uuid.UUID `db:"user_id"`
	Type        string    `db:"decision_type"`
	Comment     string    `db:"comment"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	DeciderName string    `db:"decider_name"`
	TermTitle   string    `db:"term_title"`
}

func (r decisionRow) toDomain() domain.Decision {
	return domain.Decision{
		ID:          r.ID,
		TermID:      r.TermID,
		UserID:      r.UserID,
		Type:        domain.DecisionType(r.Type),
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeciderName: r.DeciderName,
		TermTitle:   r.TermTitle,
	}
}
