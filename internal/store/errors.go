package store

import "errors"

// Sentinel errors.
var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("preference not set")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("corrupt preference value")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store closed")
)
