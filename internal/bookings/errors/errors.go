package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrStatusConflict means the booking exists but its status no longer
	// matches the expected one.
	ErrStatusConflict = errors.New("booking status changed concurrently")
)
