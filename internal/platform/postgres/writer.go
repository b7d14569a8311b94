package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// writer implements store.Writer over a connection or a transaction.
type writer struct {
	db     store.DBTX
	logger *slog.Logger
}

func newWriter(db store.DBTX, logger *slog.Logger) *writer {
	return &writer{db: db, logger: logger}
}

var _ store.Writer = (*writer)(nil)

// Reset empties every table.
func (w *writer) Reset(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, w.logger)

	_, err := w.db.ExecContext(ctx, `
		TRUNCATE dinosaur_taxonomies, dinosaur_locations, dinosaurs,
			taxonomies, locations, diets, periods`)
	if err != nil {
		log.Error("failed to reset catalog", slog.String("error", err.Error()))
		return fmt.Errorf("failed to reset catalog: %w", MapError(err))
	}

	log.Info("catalog reset")
	return nil
}

// ResolveKey returns the internal key of the record of kind with the given public ID.
func (w *writer) ResolveKey(ctx context.Context, kind domain.Kind, id int) (uuid.UUID, error) {
	if !kind.Valid() {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	// Each kind's table is named by its plural.
	var key uuid.UUID
	err := w.db.QueryRowContext(ctx, "SELECT key FROM "+kind.Plural()+" WHERE id = $1", id).Scan(&key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%w: id %d", store.NotFound(kind), id)
		}
		return uuid.Nil, store.NewStoreError(kind, "resolve_key", "failed to resolve key", MapError(err))
	}
	return key, nil
}

// insert runs an INSERT for one record and maps the failure.
func (w *writer) insert(ctx context.Context, kind domain.Kind, id int, query string, args ...any) error {
	log := logger.FromContextOrDefault(ctx, w.logger)

	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create record",
			slog.String("kind", kind.String()),
			slog.Int("id", id),
			slog.String("sqlstate", sqlState(err)),
			slog.String("error", err.Error()))
		return store.NewStoreError(kind, "create", "failed to insert record", MapError(err))
	}

	log.Debug("record created",
		slog.String("kind", kind.String()),
		slog.Int("id", id))
	return nil
}

func assignKey(key *uuid.UUID) {
	if *key == uuid.Nil {
		*key = uuid.New()
	}
}

func invalid(kind domain.Kind, err error) error {
	return store.NewStoreError(kind, "create", "validation failed",
		fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
}

// CreatePeriod stores p and assigns its key when unset.
func (w *writer) CreatePeriod(ctx context.Context, p *domain.Period) error {
	if err := p.Validate(); err != nil {
		return invalid(domain.KindPeriod, err)
	}
	assignKey(&p.Key)
	return w.insert(ctx, domain.KindPeriod, p.ID, `
		INSERT INTO periods (key, id, name, description, from_mya, to_mya)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.Key, p.ID, p.Name, p.Description, p.From, p.To)
}

// CreateDiet stores d and assigns its key when unset.
func (w *writer) CreateDiet(ctx context.Context, d *domain.Diet) error {
	if err := d.Validate(); err != nil {
		return invalid(domain.KindDiet, err)
	}
	assignKey(&d.Key)
	return w.insert(ctx, domain.KindDiet, d.ID, `
		INSERT INTO diets (key, id, name, description)
		VALUES ($1, $2, $3, $4)`,
		d.Key, d.ID, d.Name, d.Description)
}

// CreateLocation stores l and assigns its key when unset.
func (w *writer) CreateLocation(ctx context.Context, l *domain.Location) error {
	if err := l.Validate(); err != nil {
		return invalid(domain.KindLocation, err)
	}
	assignKey(&l.Key)
	return w.insert(ctx, domain.KindLocation, l.ID, `
		INSERT INTO locations (key, id, name)
		VALUES ($1, $2, $3)`,
		l.Key, l.ID, l.Name)
}

// CreateTaxonomy stores t. A missing parent surfaces as store.ErrInvalidEntity
// through the foreign key.
func (w *writer) CreateTaxonomy(ctx context.Context, t *domain.Taxonomy) error {
	if err := t.Validate(); err != nil {
		return invalid(domain.KindTaxonomy, err)
	}
	assignKey(&t.Key)

	var parent uuid.NullUUID
	if t.Parent != nil {
		parent = uuid.NullUUID{UUID: t.Parent.Key, Valid: true}
	}
	return w.insert(ctx, domain.KindTaxonomy, t.ID, `
		INSERT INTO taxonomies (key, id, name, description, parent_key)
		VALUES ($1, $2, $3, $4, $5)`,
		t.Key, t.ID, t.Name, t.Description, parent)
}

// CreateDinosaur stores d and its link rows. Callers run it inside a
// transaction so a failed link leaves no partial dinosaur behind.
func (w *writer) CreateDinosaur(ctx context.Context, d *domain.Dinosaur) error {
	if err := d.Validate(); err != nil {
		return invalid(domain.KindDinosaur, err)
	}
	assignKey(&d.Key)

	err := w.insert(ctx, domain.KindDinosaur, d.ID, `
		INSERT INTO dinosaurs (key, id, name, description, image, size, diet_key, period_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.Key, d.ID, d.Name, d.Description, d.Image, d.Size, d.Diet.Key, d.Period.Key)
	if err != nil {
		return err
	}

	for _, l := range d.Locations {
		err := w.insert(ctx, domain.KindDinosaur, d.ID, `
			INSERT INTO dinosaur_locations (dinosaur_key, location_key)
			VALUES ($1, $2)`,
			d.Key, l.Key)
		if err != nil {
			return err
		}
	}
	for _, t := range d.Taxonomies {
		err := w.insert(ctx, domain.KindDinosaur, d.ID, `
			INSERT INTO dinosaur_taxonomies (dinosaur_key, taxonomy_key)
			VALUES ($1, $2)`,
			d.Key, t.Key)
		if err != nil {
			return err
		}
	}
	return nil
}
