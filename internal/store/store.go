package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
)

// Reader is the read contract shared by every entity type. Records returned
// by a Reader have their relationship fields already joined.
type Reader[T any] interface {
	// FindPage returns up to limit records ordered by public ID ascending,
	// skipping offset records, together with the total number of records.
	// The page and the count are drawn from the same snapshot.
	FindPage(ctx context.Context, offset, limit int) ([]T, int, error)

	// FindByID returns the record with the given public ID, including its
	// reverse relationship (the dinosaurs that reference it, where the
	// entity has one). Returns an error wrapping ErrNotFound if absent.
	FindByID(ctx context.Context, id int) (T, error)

	// FindByIDs returns every record whose public ID is in ids. Missing ids
	// are skipped silently and the result is ordered by public ID.
	FindByIDs(ctx context.Context, ids []int) ([]T, error)
}

// Catalog groups the readers of the five entity types.
type Catalog interface {
	Dinosaurs() Reader[domain.Dinosaur]
	Diets() Reader[domain.Diet]
	Periods() Reader[domain.Period]
	Locations() Reader[domain.Location]
	Taxonomies() Reader[domain.Taxonomy]
}

// Writer is the contract used by the seed process. Records are created once
// and never updated.
type Writer interface {
	// Reset deletes every record of every type.
	Reset(ctx context.Context) error

	// ResolveKey returns the internal key of the record of the given kind and
	// public ID. Returns an error wrapping ErrNotFound if absent.
	ResolveKey(ctx context.Context, kind domain.Kind, id int) (uuid.UUID, error)

	CreatePeriod(ctx context.Context, p *domain.Period) error
	CreateDiet(ctx context.Context, d *domain.Diet) error
	CreateLocation(ctx context.Context, l *domain.Location) error

	// CreateTaxonomy stores t. A non-nil t.Parent must carry the key of an
	// already stored taxonomy.
	CreateTaxonomy(ctx context.Context, t *domain.Taxonomy) error

	// CreateDinosaur stores d and its references. Diet, Period, Locations and
	// Taxonomies must carry keys of already stored records.
	CreateDinosaur(ctx context.Context, d *domain.Dinosaur) error
}

// Seeder is implemented by stores that can run a whole seed atomically. fn
// receives a Writer scoped to the unit of work; if fn returns an error no
// change is kept.
type Seeder interface {
	Seed(ctx context.Context, fn func(ctx context.Context, w Writer) error) error
}
