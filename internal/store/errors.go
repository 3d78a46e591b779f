package store

import "errors"

var (
	// ErrNotInitialized is returned when an operation is invoked before
	// the store has been given an open database.
	ErrNotInitialized = errors.New("store not initialized")

	// ErrInvalidStatus is returned when a run status transition names an
	// unknown status value.
	ErrInvalidStatus = errors.New("invalid run status")
)
