package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/dinosaur-api/internal/platform/postgres"
	"github.com/phrazzld/dinosaur-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "dinosaurs",
		ColumnName:     "name",
		ConstraintName: "dinosaurs_name_key",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "no rows", err: sql.ErrNoRows, target: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), target: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError("23503"), target: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), target: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), target: store.ErrInvalidEntity},
		{
			name:   "wrapped unique violation",
			err:    fmt.Errorf("insert: %w", newPgError("23505")),
			target: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, postgres.MapError(tc.err), tc.target)
		})
	}
}

func TestMapErrorPassThrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, postgres.MapError(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, postgres.MapError(plain))

	other := newPgError("40001")
	assert.Equal(t, error(other), postgres.MapError(other))
}

func TestMapErrorNamesTheViolation(t *testing.T) {
	t.Parallel()

	err := postgres.MapError(newPgError("23505"))
	assert.Contains(t, err.Error(), "unique violation (dinosaurs.dinosaurs_name_key)")

	err = postgres.MapError(newPgError("23502"))
	assert.Contains(t, err.Error(), "not null violation (dinosaurs.name)")
}
