package service

import "errors"

// ValidationError is a rejected ride submission. Its message is part of the
// public API and is returned to clients verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var (
	// ErrInvalidStartLocation is returned when start coordinates are out of range.
	ErrInvalidStartLocation = &ValidationError{msg: "Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"}

	// ErrInvalidEndLocation is returned when end coordinates are out of range.
	ErrInvalidEndLocation = &ValidationError{msg: "End latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"}

	// ErrInvalidRiderName is returned when rider_name is not a non-empty string.
	ErrInvalidRiderName = &ValidationError{msg: "Rider name must be a non empty string"}

	// ErrInvalidDriverName is returned when driver_name is not a non-empty string.
	ErrInvalidDriverName = &ValidationError{msg: "Driver name must be a non empty string"}

	// ErrInvalidDriverVehicle is returned when driver_vehicle is not a non-empty string.
	ErrInvalidDriverVehicle = &ValidationError{msg: "Driver vehicle name must be a non empty string"}
)

var (
	// ErrRidesNotFound is returned when a well-formed query matches no rides.
	ErrRidesNotFound = errors.New("rides not found")
)
