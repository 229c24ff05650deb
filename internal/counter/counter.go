// Package counter keeps the cumulative number of completed simulations.
//
// Every backend increments atomically: concurrent callers never lose an
// update. Callers that must not fail because of the counter wrap a Store in
// a Tracker.
package counter

import (
	"context"
	"errors"
	"fmt"
)

// DefaultName is the counter key used when none is configured.
const DefaultName = "simulations"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendRemote = "remote"
	BackendMemory = "memory"
)

// Operation names carried by StorageError.
const (
	OpOpen      = "open"
	OpGet       = "get"
	OpIncrement = "increment"
)

// ErrMalformed reports a stored value that is not a non-negative integer.
var ErrMalformed = errors.New("malformed counter value")

// Store is a durable, monotonically increasing counter.
type Store interface {
	// Get returns the current value, creating the counter at 0 if absent.
	Get(ctx context.Context) (int64, error)
	// Increment adds one and returns the new value.
	Increment(ctx context.Context) (int64, error)
	Close() error
}

// StorageError wraps a failure from a counter backend.
type StorageError struct {
	Backend string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("counter %s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(backend, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Backend: backend, Op: op, Err: err}
}
