package domain

// Ride is a persisted trip record.
// Rides are append-only: once inserted they are never updated or deleted.
type Ride struct {
	ID            int64
	StartLat      float64
	StartLong     float64
	EndLat        float64
	EndLong       float64
	RiderName     string
	DriverName    string
	DriverVehicle string
	Created       string // assigned by the store at insert time
}

// NewRide is a ride submission that has passed validation.
// The store assigns ID and Created on insert.
type NewRide struct {
	StartLat      float64
	StartLong     float64
	EndLat        float64
	EndLong       float64
	RiderName     string
	DriverName    string
	DriverVehicle string
}

// Coordinate bounds in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidPoint reports whether lat and lng are both within range.
// NaN is never in range.
func ValidPoint(lat, lng float64) bool {
	return lat >= MinLatitude && lat <= MaxLatitude &&
		lng >= MinLongitude && lng <= MaxLongitude
}
