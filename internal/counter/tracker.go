package counter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lazypower/lovesim/internal/config"
	"github.com/lazypower/lovesim/internal/metrics"
)

// Tracker makes a Store best-effort: failures are logged and counted, and
// the caller always gets a value back.
type Tracker struct {
	store   Store
	backend string
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewTracker wraps s. m may be nil.
func NewTracker(s Store, backend string, m *metrics.Metrics) *Tracker {
	return &Tracker{
		store:   s,
		backend: backend,
		metrics: m,
		log:     slog.Default().With("component", "counter", "backend", backend),
	}
}

// OpenTracker opens the backend selected by cfg. When the backend cannot be
// opened the failure is logged and counted, and the returned Tracker reports
// every operation as failed.
func OpenTracker(cfg config.Config, m *metrics.Metrics) *Tracker {
	backend := cfg.Counter.Backend
	s, err := Open(cfg)
	if err != nil {
		var se *StorageError
		if !errors.As(err, &se) {
			err = storageErr(backend, OpOpen, err)
		}
		s = unavailableStore{err: err}
	}
	t := NewTracker(s, backend, m)
	if err != nil {
		t.fail(OpOpen, err)
	}
	return t
}

// unavailableStore stands in for a backend that failed to open.
type unavailableStore struct{ err error }

func (u unavailableStore) Get(ctx context.Context) (int64, error)       { return 0, u.err }
func (u unavailableStore) Increment(ctx context.Context) (int64, error) { return 0, u.err }
func (u unavailableStore) Close() error                                 { return nil }

// Backend returns the configured backend name.
func (t *Tracker) Backend() string { return t.backend }

// Load returns the current count. ok is false when the store failed.
func (t *Tracker) Load(ctx context.Context) (int64, bool) {
	n, err := t.store.Get(ctx)
	if err != nil {
		t.fail(OpGet, err)
		return 0, false
	}
	return n, true
}

// Record increments the count once. ok is false when the store failed.
func (t *Tracker) Record(ctx context.Context) (int64, bool) {
	n, err := t.store.Increment(ctx)
	if err != nil {
		t.fail(OpIncrement, err)
		return 0, false
	}
	return n, true
}

// Close closes the underlying store.
func (t *Tracker) Close() error {
	return t.store.Close()
}

func (t *Tracker) fail(op string, err error) {
	t.log.Warn("run counter unavailable", "op", op, "err", err, "malformed", errors.Is(err, ErrMalformed))
	t.metrics.CounterFailure(t.backend, op)
}
