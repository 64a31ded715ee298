package store

import (
	"context"
	"sync"
)

// Memory is a map-backed ValueStore. Values live for the process lifetime only.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get retrieves a value by key.
func (m *Memory) Get(ctx context.Context, key string, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}

	data, ok := m.values[key]
	if !ok {
		return ErrNotFound
	}
	return Decode(key, data, dest)
}

// Set stores a value by key.
func (m *Memory) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.values[key] = data
	return nil
}

// SetRaw stores pre-encoded bytes, bypassing JSON encoding.
// Used to seed stores with legacy or hand-written values.
func (m *Memory) SetRaw(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), data...)
}

// Close marks the store closed. Further operations return ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
