package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Get builds b and scans exactly one row into dst.
func Get(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, query, args...)
}

// Select builds b and scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

// Exec builds and executes b.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

// Count runs SELECT count(*) over from with the where clauses of filter applied.
func Count(ctx context.Context, q Querier, from string, filter squirrel.Sqlizer) (int, error) {
	b := Builder().Select("count(*)").From(from)
	if filter != nil {
		b = b.Where(filter)
	}
	var n int
	if err := Get(ctx, q, &n, b); err != nil {
		return 0, err
	}
	return n, nil
}

// Paged applies LIMIT/OFFSET for a 1-indexed page.
func Paged(b squirrel.SelectBuilder, page, pageSize int) squirrel.SelectBuilder {
	return b.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize))
}

// EnumPtr converts an optional string-backed enum to *string for binding.
func EnumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// ToEnumPtr converts an optional scanned string into an optional enum.
func ToEnumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// Strings returns s, or an empty non-nil slice for nil.
func Strings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
