package repository

import "errors"

var (
	// ErrStorage is returned when the backing store fails to read or write.
	// The underlying cause is logged by the store and not exposed to callers.
	ErrStorage = errors.New("storage error")
)
