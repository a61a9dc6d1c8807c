// Package storage keeps the single serialized session value under one
// well-known key. Backends differ only in where the bytes live.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrEmpty is returned by Load when nothing is stored under the key
var ErrEmpty = errors.New("storage: no value stored")

// Storage is a single-key value store
type Storage interface {
	// Load returns the stored bytes or ErrEmpty.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored bytes. Last writer wins.
	Save(ctx context.Context, value []byte) error
	// Clear removes the stored value. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Memory is an in-process Storage, used by tests and single-binary demos
type Memory struct {
	mu    sync.RWMutex
	value []byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith creates an in-memory store preloaded with value
func NewMemoryWith(value []byte) *Memory {
	return &Memory{value: append([]byte(nil), value...)}
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.value == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), m.value...), nil
}

func (m *Memory) Save(_ context.Context, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	return nil
}
