// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "categories"

var columns = []string{"id", "label", "description", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides category persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row categoryRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	c := row.toDomain()
	return &c, nil
}

// List returns every category ordered by label.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []categoryRow
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("lower(label)"))
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	out := make([]domain.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a category. A duplicate label yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row categoryRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Label, c.Description, c.CreatedAt, c.UpdatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update changes label and description.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, label, description string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row categoryRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Update(table).
		Set("label", label).
		Set("description", description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a category. Terms keep existing with a null category.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "category", id)
	}
	return nil
}

type categoryRow struct {
	ID          uuid.UUID `db:"id"`
	Label       string    `db:"label"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:          r.ID,
		Label:       r.Label,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
