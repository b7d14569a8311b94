//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/platform/postgres"
	"github.com/phrazzld/dinosaur-api/internal/seed"
	"github.com/phrazzld/dinosaur-api/internal/store"
	"github.com/phrazzld/dinosaur-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAgainstPostgres(t *testing.T) {
	db := testdb.Open(t)
	s := postgres.NewPostgresStore(db, nil)
	ctx := context.Background()

	summary, err := seed.Run(ctx, s, seed.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, 12, summary[domain.KindDinosaur])

	t.Run("page", func(t *testing.T) {
		page, total, err := s.Dinosaurs().FindPage(ctx, 10, 20)
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, page, 2)
		assert.Equal(t, "Edmontosaurus", page[0].Name)
		assert.Equal(t, "Gallimimus", page[1].Name)
		assert.Equal(t, "Omnivore", page[1].Diet.Name)
	})

	t.Run("taxonomy with parent and dinosaurs", func(t *testing.T) {
		tax, err := s.Taxonomies().FindByID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, tax.Parent)
		assert.Equal(t, "Dinosauria", tax.Parent.Name)
		assert.Len(t, tax.Dinosaurs, 6)
	})

	t.Run("ids skip missing", func(t *testing.T) {
		found, err := s.Locations().FindByIDs(ctx, []int{7, 1, 99})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, 1, found[0].ID)
		assert.Equal(t, 7, found[1].ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Periods().FindByID(ctx, 4)
		assert.ErrorIs(t, err, store.ErrPeriodNotFound)
	})

	t.Run("failed reseed keeps previous data", func(t *testing.T) {
		ds := seed.Default()
		ds.Dinosaurs[0].Diet = 40

		_, err := seed.Run(ctx, s, ds, nil)
		require.ErrorIs(t, err, store.ErrDietNotFound)

		rex, err := s.Dinosaurs().FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Carnivore", rex.Diet.Name)
	})

	t.Run("migration commands", func(t *testing.T) {
		require.NoError(t, postgres.Migrate(ctx, db, "version", nil))
		assert.Error(t, postgres.Migrate(ctx, db, "sideways", nil))
	})
}
