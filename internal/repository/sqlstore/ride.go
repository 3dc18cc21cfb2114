package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"rides/internal/domain"
	"rides/internal/repository"
)

// RideRepository is a database/sql implementation of repository.RideRepository.
type RideRepository struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

var _ repository.RideRepository = (*RideRepository)(nil)

var errInsertedRideMissing = errors.New("inserted ride not found on re-read")

// NewRideRepository creates a ride repository over db using the given dialect.
func NewRideRepository(db *sql.DB, dialect Dialect, logger *slog.Logger) *RideRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &RideRepository{db: db, dialect: dialect, logger: logger}
}

// Insert persists a new ride and re-reads it by its assigned ID.
func (r *RideRepository) Insert(ctx context.Context, ride domain.NewRide) ([]*domain.Ride, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.dialect.insertRide,
		ride.StartLat,
		ride.StartLong,
		ride.EndLat,
		ride.EndLong,
		ride.RiderName,
		ride.DriverName,
		ride.DriverVehicle,
	).Scan(&id)
	if err != nil {
		return nil, r.fail(ctx, "insertRide", err)
	}

	rides, err := r.query(ctx, r.dialect.selectRideByID, id)
	if err != nil {
		return nil, r.fail(ctx, "insertRide", err)
	}
	if len(rides) == 0 {
		return nil, r.fail(ctx, "insertRide", errInsertedRideMissing)
	}
	return rides, nil
}

// GetByID retrieves the rides whose ID equals id.
// An id that is not a base-10 integer cannot match any row.
func (r *RideRepository) GetByID(ctx context.Context, id string) ([]*domain.Ride, error) {
	rideID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return []*domain.Ride{}, nil
	}

	rides, err := r.query(ctx, r.dialect.selectRideByID, rideID)
	if err != nil {
		return nil, r.fail(ctx, "getRideById", err)
	}
	return rides, nil
}

// List retrieves a window of rides in ascending ID order.
func (r *RideRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ride, error) {
	rides, err := r.query(ctx, r.dialect.selectRides, limit, offset)
	if err != nil {
		return nil, r.fail(ctx, "getRidesWithPagination", err)
	}
	return rides, nil
}

// Ping verifies the database connection.
func (r *RideRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return r.fail(ctx, "ping", err)
	}
	return nil
}

func (r *RideRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Ride, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := []*domain.Ride{}
	for rows.Next() {
		var ride domain.Ride
		if err := rows.Scan(
			&ride.ID,
			&ride.StartLat,
			&ride.StartLong,
			&ride.EndLat,
			&ride.EndLong,
			&ride.RiderName,
			&ride.DriverName,
			&ride.DriverVehicle,
			&ride.Created,
		); err != nil {
			return nil, err
		}
		rides = append(rides, &ride)
	}
	return rides, rows.Err()
}

// fail logs the cause and returns an opaque storage error.
func (r *RideRepository) fail(ctx context.Context, op string, err error) error {
	r.logger.ErrorContext(ctx, "ride store operation failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, repository.ErrStorage)
}
