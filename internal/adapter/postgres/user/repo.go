// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "password_hash", "role", "status",
	"first_name", "last_name", "bio", "phone", "website", "socials",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Expr("lower(email) = lower(?)", email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	socials := u.Socials
	if socials == nil {
		socials = map[string]string{}
	}

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			u.ID, domain.NormalizeEmail(u.Email), u.PasswordHash, string(u.Role), string(u.Status),
			u.FirstName, u.LastName, u.Bio, u.Phone, u.Website, socials,
			u.CreatedAt, u.UpdatedAt,
		).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// UpdateProfile changes the self-editable profile fields. Nil fields are
// left untouched.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.ProfileUpdate) (*domain.User, error) {
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
	set("first_name", p.FirstName)
	set("last_name", p.LastName)
	set("bio", p.Bio)
	set("phone", p.Phone)
	set("website", p.Website)
	if p.Socials != nil {
		b = b.Set("socials", p.Socials)
	}

	var row userRow
	if err := postgres.Get(ctx, q, &row, b); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// UpdateStatus sets the account status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error) {
	return r.updateColumn(ctx, id, "status", string(status))
}

// UpdateRole sets the account role.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	return r.updateColumn(ctx, id, "role", string(role))
}

func (r *Repo) updateColumn(ctx context.Context, id uuid.UUID, col string, value string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Update(table).
		Set(col, value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// List returns users matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id")
	if f.Role != nil {
		b = b.Where(sq.Eq{"role": string(*f.Role)})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	b = postgres.Page(b, f.Limit, f.Offset)

	var rows []userRow
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	users := make([]domain.User, len(rows))
	for i := range rows {
		users[i] = rows[i].toDomain()
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID         `db:"id"`
	Email        string            `db:"email"`
	PasswordHash string            `db:"password_hash"`
	Role         string            `db:"role"`
	Status       string            `db:"status"`
	FirstName    string            `db:"first_name"`
	LastName     string            `db:"last_name"`
	Bio          string            `db:"bio"`
	Phone        string            `db:"phone"`
	Website      string            `db:"website"`
	Socials      map[string]string `db:"socials"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
}

// toDomain normalizes role and status so rows written with legacy spellings
// come out as the closed enums.
func (r userRow) toDomain() domain.User {
	role, ok := domain.NormalizeRole(r.Role)
	if !ok {
		role = domain.UserRole(r.Role)
	}
	status, ok := domain.NormalizeStatus(r.Status)
	if !ok {
		status = domain.UserStatus(r.Status)
	}
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         role,
		Status:       status,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Bio:          r.Bio,
		Phone:        r.Phone,
		Website:      r.Website,
		Socials:      r.Socials,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
