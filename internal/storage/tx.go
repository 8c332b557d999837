package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InTx runs fn in a transaction and returns its result. Any error from fn
// rolls the transaction back and is returned unwrapped.
func InTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}

	out, err := fn(tx)
	if err != nil {
		_ = tx.Rollback()
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit tx: %w", err)
	}
	return out, nil
}

// WithTx is InTx for functions without a result.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	_, err := InTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
