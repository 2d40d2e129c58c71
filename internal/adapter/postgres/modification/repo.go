// Package modification implements the proposed-modification repository
// using PostgreSQL.
package modification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "modifications"

var baseColumns = []string{
	"id", "term_id", "proposer_id", "changes", "comment", "status",
	"admin_comment", "reviewer_id", "reviewed_at", "created_at", "updated_at",
}

// Writes return only the id; the caller-facing row is reloaded through
// GetByID so the joined term and proposer fields are filled.
const returningID = "RETURNING id"

var pending = sq.Eq{"status": string(domain.ModificationPending)}

// Repo provides modification persistence. Resolve and Amend only touch rows
// that are still pending.
type Repo struct {
	db postgres.Querier
}

// New creates a new modification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectModifications() sq.SelectBuilder {
	cols := make([]string, 0, len(baseColumns)+3)
	for _, c := range baseColumns {
		cols = append(cols, "m."+c)
	}
	cols = append(cols,
		"t.title AS term_title",
		"t.author_id AS term_author_id",
		"trim(u.first_name || ' ' || u.last_name) AS proposer_name",
	)
	return postgres.Builder().
		Select(cols...).
		From(table + " m").
		Join("terms t ON t.id = m.term_id").
		Join("users u ON u.id = m.proposer_id")
}

// GetByID returns a modification with the owner of its term.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Modification, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row modificationRow
	if err := postgres.Get(ctx, q, &row, selectModifications().Where(sq.Eq{"m.id": id})); err != nil {
		return nil, postgres.MapError(err, "modification", id)
	}

	m := row.toDomain()
	return &m, nil
}

// List returns modifications matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ModificationFilter) ([]domain.Modification, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectModifications().OrderBy("m.created_at DESC", "m.id")
	if f.TermID != nil {
		b = b.Where(sq.Eq{"m.term_id": *f.TermID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"m.status": string(*f.Status)})
	}
	if f.ProposerID != nil {
		b = b.Where(sq.Eq{"m.proposer_id": *f.ProposerID})
	}
	if f.TermAuthorID != nil {
		b = b.Where(sq.Eq{"t.author_id": *f.TermAuthorID})
	}
	if f.ExcludeProposerID != nil {
		b = b.Where(sq.NotEq{"m.proposer_id": *f.ExcludeProposerID})
	}
	b = postgres.Page(b, f.Limit, f.Offset)

	var rows []modificationRow
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "modification", uuid.Nil)
	}

	out := make([]domain.Modification, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a pending modification.
func (r *Repo) Create(ctx context.Context, m *domain.Modification) (*domain.Modification, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id uuid.UUID
	err := postgres.Get(ctx, q, &id, postgres.Builder().
		Insert(table).
		Columns("id", "term_id", "proposer_id", "changes", "comment", "status", "created_at", "updated_at").
		Values(m.ID, m.TermID, m.ProposerID, []byte(m.Changes), m.Comment, string(m.Status), m.CreatedAt, m.UpdatedAt).
		Suffix(returningID))
	if err != nil {
		return nil, postgres.MapError(err, "modification", m.ID)
	}

	return r.GetByID(ctx, id)
}

// Resolve moves a pending modification to its final status. If the row
// exists but is no longer pending, ErrConflict is returned.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Modification, error) {
	b := postgres.Builder().
		Update(table).
		Set("status", string(res.Status)).
		Set("admin_comment", res.AdminComment).
		Set("reviewer_id", res.ReviewerID).
		Set("reviewed_at", res.ReviewedAt).
		Set("updated_at", res.ReviewedAt).
		Where(sq.Eq{"id": id}).
		Where(pending).
		Suffix(returningID)

	return r.updatePending(ctx, id, b)
}

// Amend rewrites comment and/or changes of a pending modification. Nil
// arguments are left untouched. If the row exists but is no longer pending,
// ErrConflict is returned.
func (r *Repo) Amend(ctx context.Context, id uuid.UUID, comment *string, changes json.RawMessage) (*domain.Modification, error) {
	b := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(pending).
		Suffix(returningID)
	if comment != nil {
		b = b.Set("comment", *comment)
	}
	if changes != nil {
		b = b.Set("changes", []byte(changes))
	}

	return r.updatePending(ctx, id, b)
}

func (r *Repo) updatePending(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) (*domain.Modification, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var updated uuid.UUID
	err := postgres.Get(ctx, q, &updated, b)
	if err == nil {
		return r.GetByID(ctx, updated)
	}

	err = postgres.MapError(err, "modification", id)
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// Zero rows: either the id is unknown or the status moved on.
	var exists bool
	if xerr := postgres.Get(ctx, q, &exists, postgres.Builder().
		Select().
		Column(sq.Expr("EXISTS(SELECT 1 FROM modifications WHERE id = ?)", id))); xerr != nil {
		return nil, postgres.MapError(xerr, "modification", id)
	}
	if exists {
		return nil, postgres.MapError(domain.ErrConflict, "modification", id)
	}
	return nil, err
}

// Delete removes a modification.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "modification", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "modification", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type modificationRow struct {
	ID           uuid.UUID  `db:"id"`
	TermID       uuid.UUID  `db:"term_id"`
	ProposerID   uuid.UUID  `db:"proposer_id"`
	Changes      []byte     `db:"changes"`
	Comment      string     `db:"comment"`
	Status       string     `db:"status"`
	AdminComment string     `db:"admin_comment"`
	ReviewerID   *uuid.UUID `db:"reviewer_id"`
	ReviewedAt   *time.Time `db:"reviewed_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	TermTitle    string     `db:"term_title"`
	TermAuthorID uuid.UUID  `db:"term_author_id"`
	ProposerName string     `db:"proposer_name"`
}

func (r modificationRow) toDomain() domain.Modification {
	return domain.Modification{
		ID:           r.ID,
		TermID:       r.TermID,
		ProposerID:   r.ProposerID,
		Changes:      json.RawMessage(r.Changes),
		Comment:      r.Comment,
		Status:       domain.ModificationStatus(r.Status),
		AdminComment: r.AdminComment,
		ReviewerID:   r.ReviewerID,
		ReviewedAt:   r.ReviewedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		TermTitle:    r.TermTitle,
		TermAuthorID: r.TermAuthorID,
		ProposerName: r.ProposerName,
	}
}
