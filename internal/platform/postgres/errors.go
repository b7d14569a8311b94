package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// violation describes how a PostgreSQL integrity error surfaces to callers.
type violation struct {
	sentinel error
	what     string
	// column reports the offending column instead of the constraint name.
	column bool
}

// violations is keyed by SQLSTATE. The catalog schema relies on unique keys
// for public ids and names, foreign keys for references and checks for
// positive ids.
var violations = map[string]violation{
	"23505": {sentinel: store.ErrDuplicate, what: "unique violation"},
	"23503": {sentinel: store.ErrInvalidEntity, what: "foreign key violation"},
	"23514": {sentinel: store.ErrInvalidEntity, what: "check constraint violation"},
	"23502": {sentinel: store.ErrInvalidEntity, what: "not null violation", column: true},
}

// MapError translates a driver error into the store sentinel errors, keeping
// the original error in the message. Errors without a mapping are returned
// unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	v, ok := violations[pgErr.Code]
	if !ok {
		return err
	}

	subject := pgErr.TableName + "." + pgErr.ConstraintName
	if v.column {
		subject = pgErr.TableName + "." + pgErr.ColumnName
	}
	return fmt.Errorf("%w: %s (%s): %v", v.sentinel, v.what, subject, err)
}

// sqlState returns the SQLSTATE code of err, or "" for non-PostgreSQL errors.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
