package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts an account with the given role and status. The password
// hash is a placeholder; seeded users cannot log in.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, status domain.UserStatus) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Status:       status,
		FirstName:    "Test",
		LastName:     "User " + suffix,
		Socials:      map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, role, status, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, string(user.Role), string(user.Status),
		user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory inserts a category with a unique label.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Category{
		ID:        uuid.New(),
		Label:     "Category " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, label, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cat.ID, cat.Label, cat.Description, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return cat
}

// SeedTerm inserts a term owned by authorID with the given status.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, status domain.TermStatus) domain.Term {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	term := domain.Term{
		ID:         uuid.New(),
		Title:      "Term " + suffix,
		Definition: "Definition of term " + suffix,
		AuthorID:   authorID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO terms (id, title, definition, author_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		term.ID, term.Title, term.Definition, term.AuthorID, string(term.Status), term.CreatedAt, term.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm: %v", err)
	}

	return term
}
