package counter

import (
	"context"
	"sync/atomic"
)

// MemoryStore is a process-local counter. It forgets its value on exit.
type MemoryStore struct {
	n atomic.Int64
}

// NewMemory returns a MemoryStore starting at start.
func NewMemory(start int64) *MemoryStore {
	m := &MemoryStore{}
	m.n.Store(start)
	return m
}

func (m *MemoryStore) Get(ctx context.Context) (int64, error) {
	return m.n.Load(), nil
}

func (m *MemoryStore) Increment(ctx context.Context) (int64, error) {
	return m.n.Add(1), nil
}

func (m *MemoryStore) Close() error { return nil }
