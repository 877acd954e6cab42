package database

import "errors"

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateCode is returned when a filière code is already taken.
	ErrDuplicateCode = errors.New("duplicate filiere code")
)
