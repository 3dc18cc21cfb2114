package sqlstore

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"rides/internal/domain"
)

// createTestRepo opens a fresh SQLite database under t.TempDir.
// Log output is captured in the returned buffer.
func createTestRepo(t *testing.T) (*RideRepository, *sql.DB, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rides.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db, SQLite))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	return NewRideRepository(db, SQLite, logger), db, &logs
}

func testRide() domain.NewRide {
	return domain.NewRide{
		StartLat:      12.9716,
		StartLong:     77.5946,
		EndLat:        12.2958,
		EndLong:       76.6394,
		RiderName:     "Asha",
		DriverName:    "Ravi",
		DriverVehicle: "KA-01-1234",
	}
}
