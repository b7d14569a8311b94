//go:build integration

// Package testdb provides a migrated PostgreSQL database for integration
// tests. Open starts a throwaway container with testcontainers-go, so the
// tests need a Docker daemon but no preconfigured DATABASE_URL.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)
//	    s := postgres.NewPostgresStore(db, nil)
//	    ...
//	}
//
// Run with: go test -tags=integration ./...
package testdb
