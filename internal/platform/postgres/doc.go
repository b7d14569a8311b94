// Package postgres provides the PostgreSQL implementation of the catalog
// contracts defined in the internal/store package. It owns the schema, which
// is applied with goose from embedded migration files, and joins
// relationships with explicit queries.
package postgres
