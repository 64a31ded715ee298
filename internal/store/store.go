// Package store provides durable key-value persistence for reading preferences.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// ValueStore is a durable get/set store of named scalar values.
// Values are JSON-encoded so any scalar (int, float, bool, string) round-trips.
type ValueStore interface {
	// Get decodes the value stored under key into dest.
	// Returns ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string, dest any) error

	// Set encodes value and stores it under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error

	// Close releases the underlying storage.
	Close() error
}

// Encode marshals a value using the store's wire format.
// Exported for backends living in subpackages.
func Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	return data, nil
}

// Decode unmarshals a stored value, reporting ErrCorrupt on failure.
func Decode(key string, data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, key, err)
	}
	return nil
}
