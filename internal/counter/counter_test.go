package counter

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lazypower/lovesim/internal/config"
	"github.com/lazypower/lovesim/internal/store"
	"go.etcd.io/bbolt"
)

// incrementConcurrently runs n increments in parallel and fails on any error.
func incrementConcurrently(t *testing.T, s Store, n int) {
	t.Helper()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Increment(ctx); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Increment: %v", err)
	}
}

func checkCount(t *testing.T, s Store, want int64) {
	t.Helper()
	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Errorf("Get = %d, want %d", got, want)
	}
}

func TestBackendsCountConcurrentIncrements(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{"memory", func(t *testing.T) Store { return NewMemory(0) }},
		{"sqlite", func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "lovesim.db"), "")
			if err != nil {
				t.Fatalf("OpenSQLite: %v", err)
			}
			return s
		}},
		{"bolt", func(t *testing.T) Store {
			s, err := OpenBolt(filepath.Join(t.TempDir(), "counter.bolt"), "")
			if err != nil {
				t.Fatalf("OpenBolt: %v", err)
			}
			return s
		}},
		{"remote", func(t *testing.T) Store {
			return testRemote(t, newFakeRTDB(t, "null"))
		}},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			defer s.Close()

			checkCount(t, s, 0)
			incrementConcurrently(t, s, 25)
			checkCount(t, s, 25)

			n, err := s.Increment(context.Background())
			if err != nil {
				t.Fatalf("Increment: %v", err)
			}
			if n != 26 {
				t.Errorf("Increment = %d, want 26", n)
			}
		})
	}
}

func TestSQLiteSharedDB(t *testing.T) {
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	s := NewSQLite(db, "runs")
	if _, err := s.Increment(context.Background()); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	// Closing a borrowed DB is the owner's job.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Errorf("db closed by store: %v", err)
	}
	checkCount(t, s, 1)
}

func TestSQLiteErrorIsStorageError(t *testing.T) {
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	s := NewSQLite(db, "")
	db.Close()

	_, err = s.Increment(context.Background())
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StorageError", err)
	}
	if se.Backend != BackendSQLite || se.Op != OpIncrement {
		t.Errorf("StorageError = %+v", se)
	}
}

func TestBoltPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.bolt")

	s, err := OpenBolt(path, "runs")
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	for i := 0; i < 3; i++ {
		s.Increment(context.Background())
	}
	s.Close()

	s, err = OpenBolt(path, "runs")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	checkCount(t, s, 3)
}

func TestBoltMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.bolt")
	s, err := OpenBolt(path, "")
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer s.Close()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCounters).Put(s.key, []byte("twelve"))
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := s.Get(context.Background()); !errors.Is(err, ErrMalformed) {
		t.Errorf("Get err = %v, want ErrMalformed", err)
	}
	if _, err := s.Increment(context.Background()); !errors.Is(err, ErrMalformed) {
		t.Errorf("Increment err = %v, want ErrMalformed", err)
	}

	// The bad value is left for an operator to inspect.
	s.db.View(func(tx *bbolt.Tx) error {
		if v := string(tx.Bucket(bucketCounters).Get(s.key)); v != "twelve" {
			t.Errorf("stored value = %q, want untouched", v)
		}
		return nil
	})
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(dir, "lovesim.db")

	for _, backend := range []string{BackendSQLite, BackendBolt, BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			c := cfg
			c.Counter.Backend = backend
			s, err := Open(c)
			if err != nil {
				t.Fatalf("Open(%s): %v", backend, err)
			}
			defer s.Close()
			checkCount(t, s, 0)
		})
	}

	c := cfg
	c.Counter.Backend = BackendRemote
	if _, err := Open(c); err == nil {
		t.Error("remote without url: expected error")
	}

	c.Counter.Backend = "etcd"
	if _, err := Open(c); err == nil {
		t.Error("unknown backend: expected error")
	}
}
