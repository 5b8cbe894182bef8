package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found or an update/delete matched no row
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects a write
	ErrDuplicate = errors.New("record already exists")
)
