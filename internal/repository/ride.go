package repository

import (
	"context"

	"rides/internal/domain"
)

// RideRepository defines the persistence operations for rides.
// Results are returned as slices: lookups that match nothing return an
// empty slice and a nil error.
type RideRepository interface {
	// Insert persists a validated ride and returns the stored row,
	// including the assigned ID and creation timestamp.
	Insert(ctx context.Context, ride domain.NewRide) ([]*domain.Ride, error)

	// GetByID retrieves the rides matching id.
	GetByID(ctx context.Context, id string) ([]*domain.Ride, error)

	// List retrieves up to limit rides starting at offset, in ID order.
	List(ctx context.Context, limit, offset int) ([]*domain.Ride, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
