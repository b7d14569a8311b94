package seed

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// TaxonomyRecord is a taxonomy as written in a dataset. Parent is the public
// ID of the parent taxonomy, or 0 for a root.
type TaxonomyRecord struct {
	ID          int
	Name        string
	Description string
	Parent      int
}

// DinosaurRecord is a dinosaur as written in a dataset. References are public
// IDs; Image is a file name under the image directory.
type DinosaurRecord struct {
	ID          int
	Name        string
	Description string
	Image       string
	Size        string
	Diet        int
	Period      int
	Locations   []int
	Taxonomies  []int
}

// Dataset is the full content of a seeded store.
type Dataset struct {
	Periods    []domain.Period
	Diets      []domain.Diet
	Locations  []domain.Location
	Taxonomies []TaxonomyRecord
	Dinosaurs  []DinosaurRecord
}

// Default returns a copy of the built-in reference dataset.
func Default() Dataset {
	ds := Dataset{
		Periods:    slices.Clone(builtinPeriods),
		Diets:      slices.Clone(builtinDiets),
		Locations:  slices.Clone(builtinLocations),
		Taxonomies: slices.Clone(builtinTaxonomies),
		Dinosaurs:  make([]DinosaurRecord, len(builtinDinosaurs)),
	}
	for i, d := range builtinDinosaurs {
		d.Locations = slices.Clone(d.Locations)
		d.Taxonomies = slices.Clone(d.Taxonomies)
		ds.Dinosaurs[i] = d
	}
	return ds
}

// Summary reports how many records of each kind a run wrote.
type Summary map[domain.Kind]int

// Run replaces the content of s with ds. The whole run is one unit of work:
// when any record fails, nothing is kept.
func Run(ctx context.Context, s store.Seeder, ds Dataset, log *slog.Logger) (Summary, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(
		slog.String("component", "seed"),
		slog.String("run_id", uuid.NewString()),
	)
	ctx = logger.WithLogger(ctx, log)

	ordered, err := orderTaxonomies(ds.Taxonomies)
	if err != nil {
		log.Error("invalid taxonomy tree", slog.String("error", err.Error()))
		return nil, err
	}

	start := time.Now()
	summary := Summary{}
	err = s.Seed(ctx, func(ctx context.Context, w store.Writer) error {
		clear(summary)
		if err := w.Reset(ctx); err != nil {
			return err
		}
		if err := createPeriods(ctx, w, ds.Periods, summary); err != nil {
			return err
		}
		if err := createDiets(ctx, w, ds.Diets, summary); err != nil {
			return err
		}
		if err := createLocations(ctx, w, ds.Locations, summary); err != nil {
			return err
		}
		if err := createTaxonomies(ctx, w, ordered, summary); err != nil {
			return err
		}
		return createDinosaurs(ctx, w, ds.Dinosaurs, summary)
	})
	if err != nil {
		log.Error("seed failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	log.Info("seed completed",
		slog.Int("periods", summary[domain.KindPeriod]),
		slog.Int("diets", summary[domain.KindDiet]),
		slog.Int("locations", summary[domain.KindLocation]),
		slog.Int("taxonomies", summary[domain.KindTaxonomy]),
		slog.Int("dinosaurs", summary[domain.KindDinosaur]),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return summary, nil
}

// orderTaxonomies checks the parent references and returns the taxonomies
// ordered so that every parent precedes its children.
func orderTaxonomies(records []TaxonomyRecord) ([]TaxonomyRecord, error) {
	parents := make(map[int]int, len(records))
	for _, t := range records {
		if _, dup := parents[t.ID]; dup {
			return nil, fmt.Errorf("%w: taxonomy %d listed twice", store.ErrDuplicate, t.ID)
		}
		parents[t.ID] = t.Parent
	}
	if err := domain.ValidateTaxonomyTree(parents); err != nil {
		return nil, err
	}

	ordered := make([]TaxonomyRecord, 0, len(records))
	placed := map[int]bool{0: true}
	for len(ordered) < len(records) {
		for _, t := range records {
			if !placed[t.ID] && placed[t.Parent] {
				ordered = append(ordered, t)
				placed[t.ID] = true
			}
		}
	}
	return ordered, nil
}

func createPeriods(ctx context.Context, w store.Writer, periods []domain.Period, summary Summary) error {
	for _, p := range periods {
		if err := w.CreatePeriod(ctx, &p); err != nil {
			return fmt.Errorf("period %d: %w", p.ID, err)
		}
		summary[domain.KindPeriod]++
	}
	return nil
}

func createDiets(ctx context.Context, w store.Writer, diets []domain.Diet, summary Summary) error {
	for _, d := range diets {
		if err := w.CreateDiet(ctx, &d); err != nil {
			return fmt.Errorf("diet %d: %w", d.ID, err)
		}
		summary[domain.KindDiet]++
	}
	return nil
}

func createLocations(ctx context.Context, w store.Writer, locations []domain.Location, summary Summary) error {
	for _, l := range locations {
		if err := w.CreateLocation(ctx, &l); err != nil {
			return fmt.Errorf("location %d: %w", l.ID, err)
		}
		summary[domain.KindLocation]++
	}
	return nil
}

func createTaxonomies(ctx context.Context, w store.Writer, records []TaxonomyRecord, summary Summary) error {
	for _, r := range records {
		t := domain.Taxonomy{ID: r.ID, Name: r.Name, Description: r.Description}
		if r.Parent != 0 {
			key, err := w.ResolveKey(ctx, domain.KindTaxonomy, r.Parent)
			if err != nil {
				return fmt.Errorf("taxonomy %d parent: %w", r.ID, err)
			}
			t.Parent = &domain.Taxonomy{Key: key, ID: r.Parent}
		}
		if err := w.CreateTaxonomy(ctx, &t); err != nil {
			return fmt.Errorf("taxonomy %d: %w", r.ID, err)
		}
		summary[domain.KindTaxonomy]++
	}
	return nil
}

func createDinosaurs(ctx context.Context, w store.Writer, records []DinosaurRecord, summary Summary) error {
	for _, r := range records {
		d := domain.Dinosaur{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Image:       r.Image,
			Size:        r.Size,
		}

		var err error
		if d.Diet.Key, err = w.ResolveKey(ctx, domain.KindDiet, r.Diet); err != nil {
			return fmt.Errorf("dinosaur %d diet: %w", r.ID, err)
		}
		if d.Period.Key, err = w.ResolveKey(ctx, domain.KindPeriod, r.Period); err != nil {
			return fmt.Errorf("dinosaur %d period: %w", r.ID, err)
		}
		for _, id := range r.Locations {
			key, err := w.ResolveKey(ctx, domain.KindLocation, id)
			if err != nil {
				return fmt.Errorf("dinosaur %d location: %w", r.ID, err)
			}
			d.Locations = append(d.Locations, domain.Location{Key: key, ID: id})
		}
		for _, id := range r.Taxonomies {
			key, err := w.ResolveKey(ctx, domain.KindTaxonomy, id)
			if err != nil {
				return fmt.Errorf("dinosaur %d taxonomy: %w", r.ID, err)
			}
			d.Taxonomies = append(d.Taxonomies, domain.Taxonomy{Key: key, ID: id})
		}

		if err := w.CreateDinosaur(ctx, &d); err != nil {
			return fmt.Errorf("dinosaur %d: %w", r.ID, err)
		}
		summary[domain.KindDinosaur]++
	}
	return nil
}
