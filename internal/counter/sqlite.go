package counter

import (
	"context"

	"github.com/lazypower/lovesim/internal/store"
)

// SQLiteStore keeps the counter in the run_counters table.
type SQLiteStore struct {
	db    *store.DB
	name  string
	owned bool
}

// NewSQLite wraps an open database. The caller keeps ownership of db.
func NewSQLite(db *store.DB, name string) *SQLiteStore {
	if name == "" {
		name = DefaultName
	}
	return &SQLiteStore{db: db, name: name}
}

// OpenSQLite opens the database at path and closes it with the store.
func OpenSQLite(path, name string) (*SQLiteStore, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, storageErr(BackendSQLite, OpOpen, err)
	}
	s := NewSQLite(db, name)
	s.owned = true
	return s, nil
}

func (s *SQLiteStore) Get(ctx context.Context) (int64, error) {
	n, err := s.db.CounterValue(ctx, s.name)
	return n, storageErr(BackendSQLite, OpGet, err)
}

func (s *SQLiteStore) Increment(ctx context.Context) (int64, error) {
	n, err := s.db.IncrementCounter(ctx, s.name)
	return n, storageErr(BackendSQLite, OpIncrement, err)
}

func (s *SQLiteStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}
