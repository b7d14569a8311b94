package projection

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "http://dino.test"

func rex() domain.Dinosaur {
	return domain.Dinosaur{
		Key:         uuid.New(),
		ID:          1,
		Name:        "Tyrannosaurus",
		Description: "Tyrant lizard king",
		Image:       "1.jpg",
		Size:        "39 ft (12 m)",
		Diet:        domain.Diet{Key: uuid.New(), ID: 2, Name: "Carnivore", Description: "Meat"},
		Period:      domain.Period{Key: uuid.New(), ID: 3, Name: "Cretaceous", From: 145, To: 66},
		Locations:   []domain.Location{{ID: 1, Name: "United States"}},
		Taxonomies:  []domain.Taxonomy{{ID: 1, Name: "Dinosauria"}, {ID: 5, Name: "Theropoda"}},
	}
}

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestLinks(t *testing.T) {
	t.Parallel()

	l := NewLinks(base + "/")
	assert.Equal(t, base, l.Base())
	assert.Equal(t, base+"/api/diet", l.Collection(domain.KindDiet))
	assert.Equal(t, base+"/api/diet?page=2", l.Page(domain.KindDiet, 2))
	assert.Equal(t, base+"/api/taxonomy/12", l.Entity(domain.KindTaxonomy, 12))
	assert.Equal(t, base+"/api/dinosaur/image/1.jpg", l.Image("1.jpg"))
	assert.Empty(t, l.Image(""))

	dir := l.Directory()
	assert.Equal(t, base+"/api/dinosaur", dir.Dinosaurs)
	assert.Equal(t, base+"/api/taxonomy", dir.Taxonomies)

	assert.Equal(t, "/api/period/1", Links{}.Entity(domain.KindPeriod, 1))
}

func TestDinosaurSummaryHasNoDescriptionOrRelationships(t *testing.T) {
	t.Parallel()

	m := toMap(t, Dinosaurs(NewLinks(base)).Summary(rex()))
	assert.Equal(t, map[string]any{
		"id":    float64(1),
		"name":  "Tyrannosaurus",
		"image": base + "/api/dinosaur/image/1.jpg",
		"size":  "39 ft (12 m)",
		"url":   base + "/api/dinosaur/1",
	}, m)
}

func TestDinosaurDetailCarriesRelationships(t *testing.T) {
	t.Parallel()

	m := toMap(t, Dinosaurs(NewLinks(base)).Detail(rex()))
	for _, key := range []string{"description", "diet", "period", "locations", "taxonomies", "url"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "Key")

	diet := m["diet"].(map[string]any)
	assert.Equal(t, "Carnivore", diet["name"])
	assert.Equal(t, base+"/api/diet/2", diet["url"])
	assert.NotContains(t, diet, "description")

	period := m["period"].(map[string]any)
	assert.Equal(t, float64(145), period["from"])

	taxonomies := m["taxonomies"].([]any)
	require.Len(t, taxonomies, 2)
	assert.Equal(t, base+"/api/taxonomy/5", taxonomies[1].(map[string]any)["url"])
}

func TestDetailEmptyRelationshipsAreArrays(t *testing.T) {
	t.Parallel()

	d := rex()
	d.Locations = nil
	d.Taxonomies = nil
	m := toMap(t, Dinosaurs(NewLinks(base)).Detail(d))
	assert.Equal(t, []any{}, m["locations"])
	assert.Equal(t, []any{}, m["taxonomies"])

	m = toMap(t, Diets(NewLinks(base)).Detail(domain.Diet{ID: 4, Name: "Unknow", Description: "Unknow diet"}))
	assert.Equal(t, []any{}, m["dinosaurs"])
}

func TestTaxonomyDetailParent(t *testing.T) {
	t.Parallel()

	view := Taxonomies(NewLinks(base))
	root := domain.Taxonomy{ID: 1, Name: "Dinosauria", Description: "Root"}
	child := domain.Taxonomy{
		ID: 2, Name: "Saurischia", Description: "Lizard-hipped",
		Parent:    &root,
		Dinosaurs: []domain.Dinosaur{rex()},
	}

	m := toMap(t, view.Detail(child))
	assert.Equal(t, map[string]any{
		"id":   float64(1),
		"name": "Dinosauria",
		"url":  base + "/api/taxonomy/1",
	}, m["parent"])
	dinos := m["dinosaurs"].([]any)
	require.Len(t, dinos, 1)
	assert.NotContains(t, dinos[0], "description")

	m = toMap(t, view.Detail(root))
	assert.Contains(t, m, "parent")
	assert.Nil(t, m["parent"])
}

func TestPeriodAndLocationShapes(t *testing.T) {
	t.Parallel()

	l := NewLinks(base)
	p := domain.Period{ID: 3, Name: "Cretaceous", Description: "Last", From: 145, To: 66}
	assert.Equal(t, PeriodSummary{ID: 3, Name: "Cretaceous", From: 145, To: 66, URL: base + "/api/period/3"},
		Periods(l).Summary(p))

	loc := domain.Location{ID: 4, Name: "Mongolia", Dinosaurs: []domain.Dinosaur{rex()}}
	detail := Locations(l).Detail(loc)
	assert.Equal(t, base+"/api/location/4", detail.URL)
	require.Len(t, detail.Dinosaurs, 1)
	assert.Equal(t, "Tyrannosaurus", detail.Dinosaurs[0].Name)
}

func TestRenderPicksShape(t *testing.T) {
	t.Parallel()

	view := Diets(NewLinks(base))
	diet := domain.Diet{ID: 1, Name: "Herbivore", Description: "Plants"}

	one := view.Render(One(diet))
	assert.IsType(t, DietDetail{}, one)

	many := view.Render(Many([]domain.Diet{diet}))
	require.IsType(t, []DietSummary{}, many)
	assert.Len(t, many, 1)

	empty := view.Render(Many[domain.Diet](nil))
	assert.Equal(t, []DietSummary{}, empty)

	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}
