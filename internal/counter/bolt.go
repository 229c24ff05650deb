package counter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.etcd.io/bbolt"
)

var bucketCounters = []byte("counters")

// BoltStore keeps the counter as a decimal string in a bbolt bucket.
// bbolt serializes write transactions, which makes Increment atomic.
type BoltStore struct {
	db  *bbolt.DB
	key []byte
}

// OpenBolt opens (or creates) the bbolt file at path.
func OpenBolt(path, name string) (*BoltStore, error) {
	if name == "" {
		name = DefaultName
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, storageErr(BackendBolt, OpOpen, fmt.Errorf("create dir: %w", err))
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout:      1 * time.Second,
		FreelistType: bbolt.FreelistArrayType,
	})
	if err != nil {
		return nil, storageErr(BackendBolt, OpOpen, err)
	}

	key := []byte(name)
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketCounters)
		if err != nil {
			return err
		}
		if b.Get(key) == nil {
			return b.Put(key, []byte("0"))
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, storageErr(BackendBolt, OpOpen, fmt.Errorf("init bucket: %w", err))
	}
	return &BoltStore{db: db, key: key}, nil
}

func (s *BoltStore) Get(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storageErr(BackendBolt, OpGet, err)
	}

	var n int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		n, err = decodeBolt(tx.Bucket(bucketCounters).Get(s.key))
		return err
	})
	return n, storageErr(BackendBolt, OpGet, err)
}

func (s *BoltStore) Increment(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storageErr(BackendBolt, OpIncrement, err)
	}

	var n int64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCounters)
		cur, err := decodeBolt(b.Get(s.key))
		if err != nil {
			return err
		}
		n = cur + 1
		return b.Put(s.key, []byte(strconv.FormatInt(n, 10)))
	})
	if err != nil {
		return 0, storageErr(BackendBolt, OpIncrement, err)
	}
	return n, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func decodeBolt(v []byte) (int64, error) {
	if v == nil {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, v)
	}
	return n, nil
}
