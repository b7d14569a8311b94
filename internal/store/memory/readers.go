package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// reader implements store.Reader over one kind. load joins the record with
// the given key; withReverse also fills in the reverse relationship. Both are
// called with the read lock held.
type reader[T any] struct {
	s    *Store
	kind domain.Kind
	load func(key uuid.UUID, withReverse bool) T
}

func (r reader[T]) sortedIDs() []int {
	ids := make([]int, 0, len(r.s.keys[r.kind]))
	for id := range r.s.keys[r.kind] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (r reader[T]) FindPage(ctx context.Context, offset, limit int) ([]T, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.sortedIDs()
	total := len(ids)
	offset = max(offset, 0)
	if offset >= total || limit <= 0 {
		return []T{}, total, nil
	}
	end := min(offset+limit, total)

	out := make([]T, 0, end-offset)
	for _, id := range ids[offset:end] {
		out = append(out, r.load(r.s.keys[r.kind][id], false))
	}
	return out, total, nil
}

func (r reader[T]) FindByID(ctx context.Context, id int) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key, ok := r.s.keys[r.kind][id]
	if !ok {
		return zero, fmt.Errorf("%w: id %d", store.NotFound(r.kind), id)
	}
	return r.load(key, true), nil
}

func (r reader[T]) FindByIDs(ctx context.Context, ids []int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := slices.Clone(ids)
	slices.Sort(wanted)
	wanted = slices.Compact(wanted)

	out := make([]T, 0, len(wanted))
	for _, id := range wanted {
		if key, ok := r.s.keys[r.kind][id]; ok {
			out = append(out, r.load(key, false))
		}
	}
	return out, nil
}

// Dinosaurs returns the dinosaur reader.
func (s *Store) Dinosaurs() store.Reader[domain.Dinosaur] {
	return reader[domain.Dinosaur]{s: s, kind: domain.KindDinosaur, load: func(key uuid.UUID, _ bool) domain.Dinosaur {
		return s.joinDinosaur(s.dinosaurs[key])
	}}
}

// Diets returns the diet reader.
func (s *Store) Diets() store.Reader[domain.Diet] {
	return reader[domain.Diet]{s: s, kind: domain.KindDiet, load: func(key uuid.UUID, withReverse bool) domain.Diet {
		d := s.diets[key]
		if withReverse {
			d.Dinosaurs = s.dinosaursWhere(func(row dinosaurRow) bool { return row.diet == key })
		}
		return d
	}}
}

// Periods returns the period reader.
func (s *Store) Periods() store.Reader[domain.Period] {
	return reader[domain.Period]{s: s, kind: domain.KindPeriod, load: func(key uuid.UUID, withReverse bool) domain.Period {
		p := s.periods[key]
		if withReverse {
			p.Dinosaurs = s.dinosaursWhere(func(row dinosaurRow) bool { return row.period == key })
		}
		return p
	}}
}

// Locations returns the location reader.
func (s *Store) Locations() store.Reader[domain.Location] {
	return reader[domain.Location]{s: s, kind: domain.KindLocation, load: func(key uuid.UUID, withReverse bool) domain.Location {
		l := s.locations[key]
		if withReverse {
			l.Dinosaurs = s.dinosaursWhere(func(row dinosaurRow) bool { return slices.Contains(row.locations, key) })
		}
		return l
	}}
}

// Taxonomies returns the taxonomy reader.
func (s *Store) Taxonomies() store.Reader[domain.Taxonomy] {
	return reader[domain.Taxonomy]{s: s, kind: domain.KindTaxonomy, load: func(key uuid.UUID, withReverse bool) domain.Taxonomy {
		t := s.joinTaxonomy(s.taxonomies[key])
		if withReverse {
			t.Dinosaurs = s.dinosaursWhere(func(row dinosaurRow) bool { return slices.Contains(row.taxonomies, key) })
		}
		return t
	}}
}

// joinTaxonomy resolves the parent one level deep.
func (s *Store) joinTaxonomy(row taxonomyRow) domain.Taxonomy {
	t := row.Taxonomy
	if parent, ok := s.taxonomies[row.parent]; ok {
		p := parent.Taxonomy
		t.Parent = &p
	}
	return t
}

func (s *Store) joinDinosaur(row dinosaurRow) domain.Dinosaur {
	d := row.Dinosaur
	d.Diet = s.diets[row.diet]
	d.Period = s.periods[row.period]

	d.Locations = make([]domain.Location, 0, len(row.locations))
	for _, key := range row.locations {
		d.Locations = append(d.Locations, s.locations[key])
	}
	slices.SortFunc(d.Locations, func(a, b domain.Location) int { return a.ID - b.ID })

	d.Taxonomies = make([]domain.Taxonomy, 0, len(row.taxonomies))
	for _, key := range row.taxonomies {
		d.Taxonomies = append(d.Taxonomies, s.taxonomies[key].Taxonomy)
	}
	slices.SortFunc(d.Taxonomies, func(a, b domain.Taxonomy) int { return a.ID - b.ID })
	return d
}

// dinosaursWhere returns the unjoined dinosaurs matching keep, ordered by ID.
func (s *Store) dinosaursWhere(keep func(dinosaurRow) bool) []domain.Dinosaur {
	out := []domain.Dinosaur{}
	for _, row := range s.dinosaurs {
		if keep(row) {
			out = append(out, row.Dinosaur)
		}
	}
	slices.SortFunc(out, func(a, b domain.Dinosaur) int { return a.ID - b.ID })
	return out
}
