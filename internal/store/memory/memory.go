// Package memory is an in-process implementation of the store contracts.
// Records are kept as flat rows keyed by their internal key and joined on
// read, the same way the Postgres store joins its tables.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

type taxonomyRow struct {
	domain.Taxonomy
	parent uuid.UUID
}

type dinosaurRow struct {
	domain.Dinosaur
	diet       uuid.UUID
	period     uuid.UUID
	locations  []uuid.UUID
	taxonomies []uuid.UUID
}

// Store holds every record in memory. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	logger *slog.Logger

	periods    map[uuid.UUID]domain.Period
	diets      map[uuid.UUID]domain.Diet
	locations  map[uuid.UUID]domain.Location
	taxonomies map[uuid.UUID]taxonomyRow
	dinosaurs  map[uuid.UUID]dinosaurRow

	// keys maps a public ID to the internal key, per kind.
	keys map[domain.Kind]map[int]uuid.UUID
}

var (
	_ store.Catalog = (*Store)(nil)
	_ store.Writer  = (*Store)(nil)
	_ store.Seeder  = (*Store)(nil)
)

// New returns an empty store.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{logger: logger.With(slog.String("component", "memory_store"))}
	s.clear()
	return s
}

func (s *Store) clear() {
	s.periods = make(map[uuid.UUID]domain.Period)
	s.diets = make(map[uuid.UUID]domain.Diet)
	s.locations = make(map[uuid.UUID]domain.Location)
	s.taxonomies = make(map[uuid.UUID]taxonomyRow)
	s.dinosaurs = make(map[uuid.UUID]dinosaurRow)
	s.keys = make(map[domain.Kind]map[int]uuid.UUID, len(domain.Kinds))
	for _, kind := range domain.Kinds {
		s.keys[kind] = make(map[int]uuid.UUID)
	}
}

// Seed runs fn against a scratch copy of the store and swaps it in only when
// fn succeeds, so readers never observe a partial seed.
func (s *Store) Seed(ctx context.Context, fn func(ctx context.Context, w store.Writer) error) error {
	scratch := &Store{logger: s.logger}
	scratch.clear()
	s.mu.RLock()
	scratch.copyFrom(s)
	s.mu.RUnlock()

	if err := fn(ctx, scratch); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("discarded seed changes",
			slog.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods = scratch.periods
	s.diets = scratch.diets
	s.locations = scratch.locations
	s.taxonomies = scratch.taxonomies
	s.dinosaurs = scratch.dinosaurs
	s.keys = scratch.keys
	return nil
}

func (s *Store) copyFrom(src *Store) {
	for k, v := range src.periods {
		s.periods[k] = v
	}
	for k, v := range src.diets {
		s.diets[k] = v
	}
	for k, v := range src.locations {
		s.locations[k] = v
	}
	for k, v := range src.taxonomies {
		s.taxonomies[k] = v
	}
	for k, v := range src.dinosaurs {
		s.dinosaurs[k] = v
	}
	for kind, ids := range src.keys {
		for id, key := range ids {
			s.keys[kind][id] = key
		}
	}
}

// Reset deletes every record.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	return nil
}

// ResolveKey returns the internal key of the record of kind with the given public ID.
func (s *Store) ResolveKey(ctx context.Context, kind domain.Kind, id int) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.keys[kind]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	key, ok := ids[id]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: id %d", store.NotFound(kind), id)
	}
	return key, nil
}

// register assigns a key when missing and claims id and name for kind.
// Callers hold the write lock.
func (s *Store) register(kind domain.Kind, key *uuid.UUID, id int, name string) error {
	if _, taken := s.keys[kind][id]; taken {
		return fmt.Errorf("%w: %s id %d", store.ErrDuplicate, kind, id)
	}
	if s.nameTaken(kind, name) {
		return fmt.Errorf("%w: %s name %q", store.ErrDuplicate, kind, name)
	}
	if *key == uuid.Nil {
		*key = uuid.New()
	}
	s.keys[kind][id] = *key
	return nil
}

func (s *Store) nameTaken(kind domain.Kind, name string) bool {
	switch kind {
	case domain.KindPeriod:
		return anyNamed(s.periods, func(p domain.Period) string { return p.Name }, name)
	case domain.KindDiet:
		return anyNamed(s.diets, func(d domain.Diet) string { return d.Name }, name)
	case domain.KindLocation:
		return anyNamed(s.locations, func(l domain.Location) string { return l.Name }, name)
	case domain.KindTaxonomy:
		return anyNamed(s.taxonomies, func(t taxonomyRow) string { return t.Name }, name)
	case domain.KindDinosaur:
		return anyNamed(s.dinosaurs, func(d dinosaurRow) string { return d.Name }, name)
	}
	return false
}

func anyNamed[V any](rows map[uuid.UUID]V, name func(V) string, want string) bool {
	for _, row := range rows {
		if name(row) == want {
			return true
		}
	}
	return false
}

func invalid(kind domain.Kind, err error) error {
	return store.NewStoreError(kind, "create", "validation failed",
		fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
}

// CreatePeriod stores p and assigns its key when unset.
func (s *Store) CreatePeriod(ctx context.Context, p *domain.Period) error {
	if err := p.Validate(); err != nil {
		return invalid(domain.KindPeriod, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.register(domain.KindPeriod, &p.Key, p.ID, p.Name); err != nil {
		return err
	}
	row := *p
	row.Dinosaurs = nil
	s.periods[p.Key] = row
	return nil
}

// CreateDiet stores d and assigns its key when unset.
func (s *Store) CreateDiet(ctx context.Context, d *domain.Diet) error {
	if err := d.Validate(); err != nil {
		return invalid(domain.KindDiet, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.register(domain.KindDiet, &d.Key, d.ID, d.Name); err != nil {
		return err
	}
	row := *d
	row.Dinosaurs = nil
	s.diets[d.Key] = row
	return nil
}

// CreateLocation stores l and assigns its key when unset.
func (s *Store) CreateLocation(ctx context.Context, l *domain.Location) error {
	if err := l.Validate(); err != nil {
		return invalid(domain.KindLocation, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.register(domain.KindLocation, &l.Key, l.ID, l.Name); err != nil {
		return err
	}
	row := *l
	row.Dinosaurs = nil
	s.locations[l.Key] = row
	return nil
}

// CreateTaxonomy stores t. A non-nil parent must already be stored.
func (s *Store) CreateTaxonomy(ctx context.Context, t *domain.Taxonomy) error {
	if err := t.Validate(); err != nil {
		return invalid(domain.KindTaxonomy, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var parent uuid.UUID
	if t.Parent != nil {
		if _, ok := s.taxonomies[t.Parent.Key]; !ok {
			return invalid(domain.KindTaxonomy,
				fmt.Errorf("%w: parent of taxonomy %d", store.ErrTaxonomyNotFound, t.ID))
		}
		parent = t.Parent.Key
	}

	if err := s.register(domain.KindTaxonomy, &t.Key, t.ID, t.Name); err != nil {
		return err
	}
	row := taxonomyRow{Taxonomy: *t, parent: parent}
	row.Parent = nil
	row.Dinosaurs = nil
	s.taxonomies[t.Key] = row
	return nil
}

// CreateDinosaur stores d. Every referenced record must already be stored.
func (s *Store) CreateDinosaur(ctx context.Context, d *domain.Dinosaur) error {
	if err := d.Validate(); err != nil {
		return invalid(domain.KindDinosaur, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.diets[d.Diet.Key]; !ok {
		return invalid(domain.KindDinosaur, fmt.Errorf("%w: diet of dinosaur %d", store.ErrDietNotFound, d.ID))
	}
	if _, ok := s.periods[d.Period.Key]; !ok {
		return invalid(domain.KindDinosaur, fmt.Errorf("%w: period of dinosaur %d", store.ErrPeriodNotFound, d.ID))
	}

	row := dinosaurRow{diet: d.Diet.Key, period: d.Period.Key}
	for _, l := range d.Locations {
		if _, ok := s.locations[l.Key]; !ok {
			return invalid(domain.KindDinosaur, fmt.Errorf("%w: location of dinosaur %d", store.ErrLocationNotFound, d.ID))
		}
		row.locations = append(row.locations, l.Key)
	}
	for _, t := range d.Taxonomies {
		if _, ok := s.taxonomies[t.Key]; !ok {
			return invalid(domain.KindDinosaur, fmt.Errorf("%w: taxonomy of dinosaur %d", store.ErrTaxonomyNotFound, d.ID))
		}
		row.taxonomies = append(row.taxonomies, t.Key)
	}

	if err := s.register(domain.KindDinosaur, &d.Key, d.ID, d.Name); err != nil {
		return err
	}
	row.Dinosaur = domain.Dinosaur{
		Key:         d.Key,
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		Size:        d.Size,
	}
	s.dinosaurs[d.Key] = row
	return nil
}
