package database

import "errors"

// Sentinel errors shared by every repository implementation. Services use
// errors.Is to translate them into domain errors.
var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrNoSlotsLeft is returned by a conditional slot decrement when the
	// seminar exists but has no remaining capacity.
	ErrNoSlotsLeft = errors.New("no slots left")

	// ErrStatusConflict is returned when a compare-and-set on a booking status
	// finds a different current status than expected.
	ErrStatusConflict = errors.New("booking status changed concurrently")

	// ErrDuplicate is returned when a unique key already exists.
	ErrDuplicate = errors.New("duplicate key")
)
