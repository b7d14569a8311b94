package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// PostgresStore implements store.Catalog, store.Writer and store.Seeder
// using a PostgreSQL database as the storage backend.
type PostgresStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresStore creates a new PostgreSQL implementation of the catalog.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresStore(db *sql.DB, logger *slog.Logger) *PostgresStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

var (
	_ store.Catalog = (*PostgresStore)(nil)
	_ store.Writer  = (*PostgresStore)(nil)
	_ store.Seeder  = (*PostgresStore)(nil)
)

// Seed runs fn inside a single transaction. If fn fails nothing it wrote is kept.
func (s *PostgresStore) Seed(ctx context.Context, fn func(ctx context.Context, w store.Writer) error) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, newWriter(tx, s.logger))
	})
}

// Reset implements store.Writer.Reset outside of any seed transaction.
func (s *PostgresStore) Reset(ctx context.Context) error {
	return newWriter(s.db, s.logger).Reset(ctx)
}

// ResolveKey implements store.Writer.ResolveKey.
func (s *PostgresStore) ResolveKey(ctx context.Context, kind domain.Kind, id int) (uuid.UUID, error) {
	return newWriter(s.db, s.logger).ResolveKey(ctx, kind, id)
}

// CreatePeriod implements store.Writer.CreatePeriod.
func (s *PostgresStore) CreatePeriod(ctx context.Context, p *domain.Period) error {
	return newWriter(s.db, s.logger).CreatePeriod(ctx, p)
}

// CreateDiet implements store.Writer.CreateDiet.
func (s *PostgresStore) CreateDiet(ctx context.Context, d *domain.Diet) error {
	return newWriter(s.db, s.logger).CreateDiet(ctx, d)
}

// CreateLocation implements store.Writer.CreateLocation.
func (s *PostgresStore) CreateLocation(ctx context.Context, l *domain.Location) error {
	return newWriter(s.db, s.logger).CreateLocation(ctx, l)
}

// CreateTaxonomy implements store.Writer.CreateTaxonomy.
func (s *PostgresStore) CreateTaxonomy(ctx context.Context, t *domain.Taxonomy) error {
	return newWriter(s.db, s.logger).CreateTaxonomy(ctx, t)
}

// CreateDinosaur implements store.Writer.CreateDinosaur. The dinosaur row and
// its link rows are written in one transaction.
func (s *PostgresStore) CreateDinosaur(ctx context.Context, d *domain.Dinosaur) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return newWriter(tx, s.logger).CreateDinosaur(ctx, d)
	})
}

// table describes how to read one entity type. Every query runs inside the
// read snapshot opened by the reader.
type table[T any] struct {
	kind domain.Kind

	// selectSQL selects the columns consumed by scan. It must end before the
	// WHERE clause; the reader appends filtering, ordering and paging.
	selectSQL string
	countSQL  string

	scan func(rowScanner) (T, error)

	// join fills forward relationships that scan cannot read in the same row.
	join func(ctx context.Context, q store.DBTX, items []T) error

	// reverse fills the reverse relationship of a single record.
	reverse func(ctx context.Context, q store.DBTX, item *T) error
}

type rowScanner interface {
	Scan(dest ...any) error
}

// reader implements store.Reader for one table.
type reader[T any] struct {
	s *PostgresStore
	t table[T]
}

func (r reader[T]) FindPage(ctx context.Context, offset, limit int) ([]T, int, error) {
	log := logger.FromContextOrDefault(ctx, r.s.logger)

	var (
		items []T
		total int
	)
	err := store.RunInSnapshot(ctx, r.s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			if err := tx.QueryRowContext(ctx, r.t.countSQL).Scan(&total); err != nil {
				return err
			}
			var err error
			items, err = r.query(ctx, tx,
				r.t.selectSQL+" ORDER BY t.id LIMIT $1 OFFSET $2", limit, max(offset, 0))
			return err
		})
	if err != nil {
		log.Error("failed to read page",
			slog.String("kind", r.t.kind.String()),
			slog.Int("offset", offset),
			slog.Int("limit", limit),
			slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError(r.t.kind, "find_page", "failed to read page", MapError(err))
	}
	return items, total, nil
}

func (r reader[T]) FindByID(ctx context.Context, id int) (T, error) {
	log := logger.FromContextOrDefault(ctx, r.s.logger)
	log.Debug("retrieving record by ID",
		slog.String("kind", r.t.kind.String()),
		slog.Int("id", id))

	var item T
	if !storableID(id) {
		return item, fmt.Errorf("%w: id %d", store.NotFound(r.t.kind), id)
	}

	err := store.RunInSnapshot(ctx, r.s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			items, err := r.query(ctx, tx, r.t.selectSQL+" WHERE t.id = $1", id)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("%w: id %d", store.NotFound(r.t.kind), id)
			}
			item = items[0]
			if r.t.reverse != nil {
				return r.t.reverse(ctx, tx, &item)
			}
			return nil
		})
	if err != nil {
		var zero T
		if store.IsNotFoundError(err) {
			log.Debug("record not found",
				slog.String("kind", r.t.kind.String()),
				slog.Int("id", id))
			return zero, err
		}
		log.Error("failed to read record",
			slog.String("kind", r.t.kind.String()),
			slog.Int("id", id),
			slog.String("error", err.Error()))
		return zero, store.NewStoreError(r.t.kind, "find_by_id", "failed to read record", MapError(err))
	}
	return item, nil
}

func (r reader[T]) FindByIDs(ctx context.Context, ids []int) ([]T, error) {
	log := logger.FromContextOrDefault(ctx, r.s.logger)
	ids = storableIDs(ids)
	if len(ids) == 0 {
		return []T{}, nil
	}

	var items []T
	err := store.RunInSnapshot(ctx, r.s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			var err error
			items, err = r.query(ctx, tx,
				r.t.selectSQL+" WHERE t.id = ANY($1::integer[]) ORDER BY t.id", intArray(ids))
			return err
		})
	if err != nil {
		log.Error("failed to read records",
			slog.String("kind", r.t.kind.String()),
			slog.Int("requested", len(ids)),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(r.t.kind, "find_by_ids", "failed to read records", MapError(err))
	}
	return items, nil
}

// query runs a select built from selectSQL and applies the forward join.
func (r reader[T]) query(ctx context.Context, q store.DBTX, query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	items := []T{}
	for rows.Next() {
		item, err := r.t.scan(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		items = append(items, item)
	}
	// The join queries reuse the transaction's connection.
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	if r.t.join != nil && len(items) > 0 {
		if err := r.t.join(ctx, q, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// storableID reports whether id fits the INTEGER id columns. Ids outside
// that range cannot match a row.
func storableID(id int) bool {
	return id >= 1 && id <= math.MaxInt32
}

// storableIDs returns the ids that can match a row, in their original order.
func storableIDs(ids []int) []int {
	kept := make([]int, 0, len(ids))
	for _, id := range ids {
		if storableID(id) {
			kept = append(kept, id)
		}
	}
	return kept
}

// intArray renders ids as a Postgres array literal, to be cast with ::integer[].
func intArray(ids []int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte('}')
	return b.String()
}
