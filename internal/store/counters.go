package store

import (
	"context"
	"fmt"
	"time"
)

// CounterValue returns the named counter, creating it at 0 if absent.
func (db *DB) CounterValue(ctx context.Context, name string) (int64, error) {
	now := time.Now().UnixMilli()
	if _, err := db.ExecContext(ctx, `
		INSERT INTO run_counters (name, count, created_at, updated_at)
		VALUES (?, 0, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, name, now, now); err != nil {
		return 0, fmt.Errorf("init counter %s: %w", name, err)
	}

	var count int64
	err := db.QueryRowContext(ctx, `SELECT count FROM run_counters WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("get counter %s: %w", name, err)
	}
	return count, nil
}

// IncrementCounter adds one to the named counter and returns the new value.
// The upsert is a single statement, so concurrent callers never lose updates.
func (db *DB) IncrementCounter(ctx context.Context, name string) (int64, error) {
	now := time.Now().UnixMilli()

	var count int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO run_counters (name, count, created_at, updated_at)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(name) DO UPDATE SET count = count + 1, updated_at = excluded.updated_at
		RETURNING count
	`, name, now, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", name, err)
	}
	return count, nil
}
