package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
)

// TxFn is a unit of work run inside a transaction. Returning an error rolls
// the transaction back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// ReadSnapshot are the options of a read-only transaction that sees a single
// snapshot of the database for its whole duration.
var ReadSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// RunInTransaction runs fn in a read-write transaction and commits when fn
// succeeds. A seed runs in one such transaction so that a failure keeps the
// previous catalog.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	return RunInTransactionWithOptions(ctx, db, nil, fn)
}

// RunInSnapshot runs fn in a ReadSnapshot transaction. A page and its total
// count, or a record and its relationships, are then read consistently even
// while a seed replaces the catalog.
func RunInSnapshot(ctx context.Context, db *sql.DB, fn TxFn) error {
	return RunInTransactionWithOptions(ctx, db, ReadSnapshot, fn)
}

// RunInTransactionWithOptions is RunInTransaction with explicit transaction
// options. A nil opts uses the driver defaults. A panic in fn rolls the
// transaction back and is re-raised.
func RunInTransactionWithOptions(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFn) error {
	log := logger.FromContext(ctx).With(slog.Bool("read_only", opts != nil && opts.ReadOnly))

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(log, tx, "panic")
			// ALLOW-PANIC: the caller's panic is re-raised after rollback
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := rollback(log, tx, "error"); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	return nil
}

// rollback aborts tx and logs the outcome. A transaction the driver already
// closed is not an error.
func rollback(log *slog.Logger, tx *sql.Tx, cause string) error {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Error("failed to roll back transaction",
			slog.String("cause", cause),
			slog.String("error", err.Error()))
		return err
	}
	log.Debug("rolled back transaction", slog.String("cause", cause))
	return nil
}
