package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/newrelic/go-agent/v3/integrations/nrpq" // Registers "nrpostgres" driver
	"github.com/newrelic/go-agent/v3/newrelic"

	"rides/internal/config"
	"rides/internal/repository/sqlstore"
)

// NewDatabase opens the configured database and creates the Rides table.
// If nrApp is provided and the driver is postgres, it uses the New Relic
// instrumented driver for automatic SQL tracing.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig, nrApp *newrelic.Application) (*sql.DB, sqlstore.Dialect, error) {
	driverName := cfg.Driver
	if driverName == config.DriverPostgres && nrApp != nil {
		driverName = "nrpostgres"
	}

	dialect, err := sqlstore.DialectFor(driverName)
	if err != nil {
		return nil, sqlstore.Dialect{}, err
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, sqlstore.Dialect{}, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite has a single writer, and an in-memory database lives only as
		// long as its connection, so keep exactly one connection open forever.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	}

	// Verify connection.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, sqlstore.Dialect{}, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := sqlstore.EnsureSchema(ctx, db, dialect); err != nil {
		db.Close()
		return nil, sqlstore.Dialect{}, err
	}

	return db, dialect, nil
}
