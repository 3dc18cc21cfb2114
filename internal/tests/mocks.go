package tests

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"rides/internal/domain"
	"rides/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockRideRepository is an in-memory implementation of RideRepository.
type MockRideRepository struct {
	mu     sync.RWMutex
	rides  []*domain.Ride
	nextID int64

	// Counters for verification
	InsertCallCount  int32
	GetByIDCallCount int32
	ListCallCount    int32

	// Last pagination window requested.
	LastLimit  int
	LastOffset int

	// Error injection
	InsertError  error
	GetByIDError error
	ListError    error
	PingError    error

	// InsertDropsRide makes Insert succeed without returning the stored ride.
	InsertDropsRide bool
}

var _ repository.RideRepository = (*MockRideRepository)(nil)

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{nextID: 1}
}

func (m *MockRideRepository) Insert(ctx context.Context, ride domain.NewRide) ([]*domain.Ride, error) {
	atomic.AddInt32(&m.InsertCallCount, 1)
	if m.InsertError != nil {
		return nil, m.InsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := &domain.Ride{
		ID:            m.nextID,
		StartLat:      ride.StartLat,
		StartLong:     ride.StartLong,
		EndLat:        ride.EndLat,
		EndLong:       ride.EndLong,
		RiderName:     ride.RiderName,
		DriverName:    ride.DriverName,
		DriverVehicle: ride.DriverVehicle,
		Created:       fmt.Sprintf("2024-01-01 00:00:%02d", m.nextID%60),
	}
	m.nextID++
	m.rides = append(m.rides, stored)
	if m.InsertDropsRide {
		return []*domain.Ride{}, nil
	}
	copy := *stored
	return []*domain.Ride{&copy}, nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id string) ([]*domain.Ride, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []*domain.Ride{}
	for _, r := range m.rides {
		if strconv.FormatInt(r.ID, 10) == id {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockRideRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ride, error) {
	atomic.AddInt32(&m.ListCallCount, 1)
	m.mu.Lock()
	m.LastLimit, m.LastOffset = limit, offset
	m.mu.Unlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []*domain.Ride{}
	for i := offset; i < len(m.rides) && i < offset+limit; i++ {
		copy := *m.rides[i]
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockRideRepository) Ping(ctx context.Context) error {
	return m.PingError
}

// CountRides returns the number of stored rides.
func (m *MockRideRepository) CountRides() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rides)
}
