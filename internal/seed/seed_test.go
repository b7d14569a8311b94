package seed

import (
	"context"
	"testing"

	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/store"
	"github.com/phrazzld/dinosaur-api/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	log, _ := logger.NewTestLogger()
	s := memory.New(log)
	_, err := Run(context.Background(), s, Default(), log)
	require.NoError(t, err)
	return s
}

func TestRunDefaultDataset(t *testing.T) {
	log, buf := logger.NewTestLogger()
	s := memory.New(log)

	summary, err := Run(context.Background(), s, Default(), log)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		domain.KindPeriod:   3,
		domain.KindDiet:     4,
		domain.KindLocation: 7,
		domain.KindTaxonomy: 12,
		domain.KindDinosaur: 12,
	}, summary)

	ctx := context.Background()
	_, total, err := s.Dinosaurs().FindPage(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	_, total, err = s.Locations().FindPage(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 7, total)

	entries, err := buf.EntriesWithMessage("seed completed")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "seed", entries[0]["component"])
	assert.NotEmpty(t, entries[0]["run_id"])
	assert.EqualValues(t, 12, entries[0]["dinosaurs"])
}

func TestRunRelationships(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	rex, err := s.Dinosaurs().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tyrannosaurus", rex.Name)
	assert.Equal(t, "Carnivore", rex.Diet.Name)
	assert.Equal(t, "Cretaceous", rex.Period.Name)
	require.Len(t, rex.Locations, 2)
	assert.Equal(t, "United States", rex.Locations[0].Name)
	assert.Equal(t, "Canada", rex.Locations[1].Name)
	require.Len(t, rex.Taxonomies, 3)
	assert.Equal(t, []int{1, 2, 5}, []int{rex.Taxonomies[0].ID, rex.Taxonomies[1].ID, rex.Taxonomies[2].ID})

	saurischia, err := s.Taxonomies().FindByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, saurischia.Parent)
	assert.Equal(t, "Dinosauria", saurischia.Parent.Name)

	var names []string
	for _, d := range saurischia.Dinosaurs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"Tyrannosaurus", "Brachiosaurus", "Velociraptor",
		"Baryonyx", "Suchomimus", "Gallimimus",
	}, names)

	root, err := s.Taxonomies().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, root.Parent)
	assert.Len(t, root.Dinosaurs, 12)

	omnivore, err := s.Diets().FindByID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, omnivore.Dinosaurs, 1)
	assert.Equal(t, "Gallimimus", omnivore.Dinosaurs[0].Name)
}

func TestRunIsRepeatable(t *testing.T) {
	s := seeded(t)

	summary, err := Run(context.Background(), s, Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, 12, summary[domain.KindDinosaur])

	_, total, err := s.Taxonomies().FindPage(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestRunRejectsTaxonomyCycle(t *testing.T) {
	s := seeded(t)

	ds := Default()
	ds.Taxonomies[0].Parent = 12

	_, err := Run(context.Background(), s, ds, nil)
	assert.ErrorIs(t, err, domain.ErrTaxonomyCycle)

	root, err := s.Taxonomies().FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, root.Parent)
}

func TestRunRejectsUnknownParent(t *testing.T) {
	ds := Default()
	ds.Taxonomies[3].Parent = 42

	_, err := Run(context.Background(), memory.New(nil), ds, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownParent)
}

func TestRunKeepsNothingOnFailure(t *testing.T) {
	s := seeded(t)

	ds := Default()
	ds.Dinosaurs = append(ds.Dinosaurs, DinosaurRecord{
		ID: 13, Name: "Spinosaurus", Description: "Sail", Image: "13.jpg", Size: "50 ft",
		Diet: 2, Period: 3, Locations: []int{99},
	})
	ds.Locations = ds.Locations[:1]

	_, err := Run(context.Background(), s, ds, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrLocationNotFound)

	_, total, err := s.Locations().FindPage(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	_, err = s.Dinosaurs().FindByID(context.Background(), 13)
	assert.ErrorIs(t, err, store.ErrDinosaurNotFound)
}

func TestOrderTaxonomiesParentsFirst(t *testing.T) {
	ordered, err := orderTaxonomies([]TaxonomyRecord{
		{ID: 3, Name: "c", Parent: 2},
		{ID: 2, Name: "b", Parent: 1},
		{ID: 1, Name: "a"},
	})
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, 1, ordered[0].ID)
	assert.Equal(t, 2, ordered[1].ID)
	assert.Equal(t, 3, ordered[2].ID)

	_, err = orderTaxonomies([]TaxonomyRecord{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestDefaultReturnsCopy(t *testing.T) {
	ds := Default()
	ds.Dinosaurs[0].Locations[0] = 99
	ds.Periods[0].Name = "changed"

	fresh := Default()
	assert.Equal(t, 1, fresh.Dinosaurs[0].Locations[0])
	assert.Equal(t, "Triassic", fresh.Periods[0].Name)
}
