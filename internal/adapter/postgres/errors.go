package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// SQLSTATE codes translated to domain sentinels.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
}

// MapError translates driver errors into domain sentinels and prefixes them
// with the entity (and id, when known). Context cancellation and unknown
// errors are wrapped unchanged.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != uuid.Nil {
		subject = fmt.Sprintf("%s %s", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", subject, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodes[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s (%s): %w", subject, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s: %w", subject, sentinel)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
