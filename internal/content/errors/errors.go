package errors

import "errors"

var (
	ErrNotFound = errors.New("content record not found")

	ErrInvalidID = errors.New("invalid content ID format")
)
