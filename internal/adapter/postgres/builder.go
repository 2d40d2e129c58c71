package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return psql
}

// Get runs a single-row query and scans it into dst.
func Get(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, query, args...)
}

// Select runs a query and scans every row into dst, which must be a pointer
// to a slice.
func Select(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

// Exec runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Page applies limit/offset with a default and an upper bound.
func Page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return b.Limit(uint64(limit)).Offset(uint64(offset))
}

// Page bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)
