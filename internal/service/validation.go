package service

import (
	"math"
	"strconv"
	"strings"

	"rides/internal/domain"
)

// Submission field names.
const (
	FieldStartLat      = "start_lat"
	FieldStartLong     = "start_long"
	FieldEndLat        = "end_lat"
	FieldEndLong       = "end_long"
	FieldRiderName     = "rider_name"
	FieldDriverName    = "driver_name"
	FieldDriverVehicle = "driver_vehicle"
)

// ValidateRideSubmission checks a decoded request body and returns the
// normalized ride. Rules run in a fixed order and the first violation is
// returned as a *ValidationError.
//
// Coordinates come back as float64 whatever form they were sent in: a
// numeric string such as "45.5" is returned, and later stored, as 45.5.
func ValidateRideSubmission(input map[string]any) (domain.NewRide, error) {
	ride := domain.NewRide{
		StartLat:  toNumber(input[FieldStartLat]),
		StartLong: toNumber(input[FieldStartLong]),
		EndLat:    toNumber(input[FieldEndLat]),
		EndLong:   toNumber(input[FieldEndLong]),
	}

	if !domain.ValidPoint(ride.StartLat, ride.StartLong) {
		return domain.NewRide{}, ErrInvalidStartLocation
	}
	if !domain.ValidPoint(ride.EndLat, ride.EndLong) {
		return domain.NewRide{}, ErrInvalidEndLocation
	}

	var ok bool
	if ride.RiderName, ok = nonEmptyString(input[FieldRiderName]); !ok {
		return domain.NewRide{}, ErrInvalidRiderName
	}
	if ride.DriverName, ok = nonEmptyString(input[FieldDriverName]); !ok {
		return domain.NewRide{}, ErrInvalidDriverName
	}
	if ride.DriverVehicle, ok = nonEmptyString(input[FieldDriverVehicle]); !ok {
		return domain.NewRide{}, ErrInvalidDriverVehicle
	}

	return ride, nil
}

// toNumber coerces a decoded JSON value to float64.
// Values with no numeric reading become NaN, which fails every range check.
// That includes an explicit null, so a null coordinate is rejected rather
// than read as 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || len(s) < 1 {
		return "", false
	}
	return s, true
}
