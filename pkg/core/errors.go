package core

import "errors"

// Common errors.
var (
	// ErrInvalidName is returned when a note name is empty, unsafe or already taken.
	ErrInvalidName = errors.New("invalid note name")

	// ErrCorruptStore is returned when the persisted metadata store cannot be decoded.
	// It is fatal at startup: resetting the store would discard every note's preferences.
	ErrCorruptStore = errors.New("metadata store is corrupt")

	// ErrNotFound is returned by lookups for a note that does not exist.
	ErrNotFound = errors.New("note not found")
)
