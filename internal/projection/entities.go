package projection

import "github.com/phrazzld/dinosaur-api/internal/domain"

// DinosaurSummary is the list shape of a dinosaur.
type DinosaurSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Size  string `json:"size"`
	URL   string `json:"url"`
}

// DinosaurDetail is the lookup shape of a dinosaur. Relationships are
// rendered as the summaries of the referenced records.
type DinosaurDetail struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Size        string            `json:"size"`
	Diet        DietSummary       `json:"diet"`
	Period      PeriodSummary     `json:"period"`
	Locations   []LocationSummary `json:"locations"`
	Taxonomies  []TaxonomySummary `json:"taxonomies"`
	URL         string            `json:"url"`
}

// DietSummary is the list shape of a diet.
type DietSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DietDetail is the lookup shape of a diet.
type DietDetail struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Dinosaurs   []DinosaurSummary `json:"dinosaurs"`
	URL         string            `json:"url"`
}

// PeriodSummary is the list shape of a period.
type PeriodSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	From int    `json:"from"`
	To   int    `json:"to"`
	URL  string `json:"url"`
}

// PeriodDetail is the lookup shape of a period.
type PeriodDetail struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	From        int               `json:"from"`
	To          int               `json:"to"`
	Dinosaurs   []DinosaurSummary `json:"dinosaurs"`
	URL         string            `json:"url"`
}

// LocationSummary is the list shape of a location.
type LocationSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocationDetail is the lookup shape of a location.
type LocationDetail struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Dinosaurs []DinosaurSummary `json:"dinosaurs"`
	URL       string            `json:"url"`
}

// TaxonomySummary is the list shape of a taxonomy.
type TaxonomySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TaxonomyDetail is the lookup shape of a taxonomy. Parent is null for the root.
type TaxonomyDetail struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parent      *TaxonomySummary  `json:"parent"`
	Dinosaurs   []DinosaurSummary `json:"dinosaurs"`
	URL         string            `json:"url"`
}

// Dinosaurs returns the dinosaur view.
func Dinosaurs(l Links) View[domain.Dinosaur, DinosaurSummary, DinosaurDetail] {
	return NewView(l, dinosaurSummary, dinosaurDetail)
}

// Diets returns the diet view.
func Diets(l Links) View[domain.Diet, DietSummary, DietDetail] {
	return NewView(l, dietSummary, dietDetail)
}

// Periods returns the period view.
func Periods(l Links) View[domain.Period, PeriodSummary, PeriodDetail] {
	return NewView(l, periodSummary, periodDetail)
}

// Locations returns the location view.
func Locations(l Links) View[domain.Location, LocationSummary, LocationDetail] {
	return NewView(l, locationSummary, locationDetail)
}

// Taxonomies returns the taxonomy view.
func Taxonomies(l Links) View[domain.Taxonomy, TaxonomySummary, TaxonomyDetail] {
	return NewView(l, taxonomySummary, taxonomyDetail)
}

func dinosaurSummary(l Links, d domain.Dinosaur) DinosaurSummary {
	return DinosaurSummary{
		ID:    d.ID,
		Name:  d.Name,
		Image: l.Image(d.Image),
		Size:  d.Size,
		URL:   l.Entity(domain.KindDinosaur, d.ID),
	}
}

func dinosaurDetail(l Links, d domain.Dinosaur) DinosaurDetail {
	return DinosaurDetail{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Image:       l.Image(d.Image),
		Size:        d.Size,
		Diet:        dietSummary(l, d.Diet),
		Period:      periodSummary(l, d.Period),
		Locations:   mapAll(l, d.Locations, locationSummary),
		Taxonomies:  mapAll(l, d.Taxonomies, taxonomySummary),
		URL:         l.Entity(domain.KindDinosaur, d.ID),
	}
}

func dietSummary(l Links, d domain.Diet) DietSummary {
	return DietSummary{ID: d.ID, Name: d.Name, URL: l.Entity(domain.KindDiet, d.ID)}
}

func dietDetail(l Links, d domain.Diet) DietDetail {
	return DietDetail{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Dinosaurs:   mapAll(l, d.Dinosaurs, dinosaurSummary),
		URL:         l.Entity(domain.KindDiet, d.ID),
	}
}

func periodSummary(l Links, p domain.Period) PeriodSummary {
	return PeriodSummary{
		ID:   p.ID,
		Name: p.Name,
		From: p.From,
		To:   p.To,
		URL:  l.Entity(domain.KindPeriod, p.ID),
	}
}

func periodDetail(l Links, p domain.Period) PeriodDetail {
	return PeriodDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		From:        p.From,
		To:          p.To,
		Dinosaurs:   mapAll(l, p.Dinosaurs, dinosaurSummary),
		URL:         l.Entity(domain.KindPeriod, p.ID),
	}
}

func locationSummary(l Links, loc domain.Location) LocationSummary {
	return LocationSummary{ID: loc.ID, Name: loc.Name, URL: l.Entity(domain.KindLocation, loc.ID)}
}

func locationDetail(l Links, loc domain.Location) LocationDetail {
	return LocationDetail{
		ID:        loc.ID,
		Name:      loc.Name,
		Dinosaurs: mapAll(l, loc.Dinosaurs, dinosaurSummary),
		URL:       l.Entity(domain.KindLocation, loc.ID),
	}
}

func taxonomySummary(l Links, t domain.Taxonomy) TaxonomySummary {
	return TaxonomySummary{ID: t.ID, Name: t.Name, URL: l.Entity(domain.KindTaxonomy, t.ID)}
}

func taxonomyDetail(l Links, t domain.Taxonomy) TaxonomyDetail {
	detail := TaxonomyDetail{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Dinosaurs:   mapAll(l, t.Dinosaurs, dinosaurSummary),
		URL:         l.Entity(domain.KindTaxonomy, t.ID),
	}
	if t.Parent != nil {
		parent := taxonomySummary(l, *t.Parent)
		detail.Parent = &parent
	}
	return detail
}

// mapAll applies fn to every record. The result is never nil so that empty
// relationships serialize as [].
func mapAll[T, S any](l Links, records []T, fn func(Links, T) S) []S {
	out := make([]S, len(records))
	for i, r := range records {
		out[i] = fn(l, r)
	}
	return out
}
