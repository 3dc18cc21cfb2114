package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"rides/internal/domain"
	"rides/internal/repository"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// RideService handles ride operations.
type RideService struct {
	rideRepo repository.RideRepository
}

// NewRideService creates a new RideService.
func NewRideService(rideRepo repository.RideRepository) *RideService {
	return &RideService{rideRepo: rideRepo}
}

// CreateRide validates a submission and persists it.
// Invalid submissions never reach the repository.
func (s *RideService) CreateRide(ctx context.Context, input map[string]any) ([]*domain.Ride, error) {
	ride, err := ValidateRideSubmission(input)
	if err != nil {
		return nil, err
	}

	rides, err := s.rideRepo.Insert(ctx, ride)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, fmt.Errorf("insert returned no ride: %w", repository.ErrStorage)
	}
	return rides, nil
}

// GetRide retrieves a ride by ID.
func (s *RideService) GetRide(ctx context.Context, rideID string) ([]*domain.Ride, error) {
	rides, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, ErrRidesNotFound
	}
	return rides, nil
}

// ListRides retrieves one page of rides. page and pageSize are the raw
// request values; see Pagination for defaulting.
func (s *RideService) ListRides(ctx context.Context, page, pageSize string) ([]*domain.Ride, error) {
	limit, offset := Pagination(page, pageSize)
	if offset == math.MaxInt {
		// No store holds that many rows.
		return nil, ErrRidesNotFound
	}

	rides, err := s.rideRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, ErrRidesNotFound
	}
	return rides, nil
}

// Pagination turns raw page parameters into a limit and offset.
// A page below 1 or not an integer becomes DefaultPage; a page size below 1
// or not an integer becomes DefaultPageSize. Integers too large for int
// saturate at math.MaxInt, and an offset that would overflow is reported as
// math.MaxInt, which lies past the end of any store.
func Pagination(page, pageSize string) (limit, offset int) {
	p := positiveOr(page, DefaultPage)
	size := positiveOr(pageSize, DefaultPageSize)
	if p-1 > math.MaxInt/size {
		return size, math.MaxInt
	}
	return size, (p - 1) * size
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Ping reports whether the ride store is reachable.
func (s *RideService) Ping(ctx context.Context) error {
	return s.rideRepo.Ping(ctx)
}
