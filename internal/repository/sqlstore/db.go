package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the part of *sql.DB that schema setup needs.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var _ Querier = (*sql.DB)(nil)

// EnsureSchema applies the dialect's pragmas and creates the Rides table if
// it does not exist. It is idempotent.
func EnsureSchema(ctx context.Context, q Querier, d Dialect) error {
	for _, pragma := range d.pragmas {
		if _, err := q.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	if _, err := q.ExecContext(ctx, d.schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
