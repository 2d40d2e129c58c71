// Package report implements the term report repository using PostgreSQL.
package report

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "reports"

var columns = []string{
	"id", "term_id", "reporter_id", "reason", "details", "status", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides report persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectReports() sq.SelectBuilder {
	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		cols = append(cols, "r."+c)
	}
	return postgres.Builder().
		Select(append(cols, "t.title AS term_title")...).
		From(table + " r").
		Join("terms t ON t.id = r.term_id")
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row reportRow
	if err := postgres.Get(ctx, q, &row, selectReports().Where(sq.Eq{"r.id": id})); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	out := row.toDomain()
	return &out, nil
}

// List returns reports matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectReports().OrderBy("r.created_at DESC", "r.id")
	if f.ReporterID != nil {
		b = b.Where(sq.Eq{"r.reporter_id": *f.ReporterID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"r.status": string(*f.Status)})
	}

	var rows []reportRow
	if err := postgres.Select(ctx, q, &rows, postgres.Page(b, f.Limit, f.Offset)); err != nil {
		return nil, postgres.MapError(err, "report", uuid.Nil)
	}

	out := make([]domain.Report, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a report. An unknown term yields ErrNotFound.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row reportRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rep.ID, rep.TermID, rep.ReporterID, rep.Reason, rep.Details, string(rep.Status), rep.CreatedAt, rep.UpdatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "report", rep.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// UpdateStatus moves a report to a new moderation state.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row reportRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a report.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "report", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "report", id)
	}
	return nil
}

type reportRow struct {
	ID         uuid.UUID `db:"id"`
	TermID     uuid.UUID `db:"term_id"`
	ReporterID uuid.UUID `db:"reporter_id"`
	Reason     string    `db:"reason"`
	Details    string    `db:"details"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	TermTitle  string    `db:"term_title"`
}

func (r reportRow) toDomain() domain.Report {
	return domain.Report{
		ID:         r.ID,
		TermID:     r.TermID,
		ReporterID: r.ReporterID,
		Reason:     r.Reason,
		Details:    r.Details,
		Status:     domain.ReportStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		TermTitle:  r.TermTitle,
	}
}
