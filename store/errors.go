package store

import "errors"

// Common errors for snapshot store operations.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidDriver = errors.New("invalid store driver")
	ErrNotFound      = errors.New("key not found")
)
