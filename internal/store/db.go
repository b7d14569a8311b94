package store

import (
	"context"
	"database/sql"
)

// DBTX is the part of *sql.DB and *sql.Tx the SQL store needs. Writers and
// relationship joins accept it so they run the same inside a seed
// transaction or a read snapshot.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
