package projection

import (
	"strconv"
	"strings"

	"github.com/phrazzld/dinosaur-api/internal/domain"
)

const (
	// APIPrefix is the path under which every entity route is mounted.
	APIPrefix = "/api"

	// ImagePrefix is the path under which dinosaur images are served.
	ImagePrefix = APIPrefix + "/dinosaur/image"
)

// Links builds absolute URLs from a base URL. The zero value produces
// root-relative paths.
type Links struct {
	base string
}

// NewLinks returns Links rooted at baseURL. A trailing slash is ignored.
func NewLinks(baseURL string) Links {
	return Links{base: strings.TrimRight(baseURL, "/")}
}

// Base returns the base URL without a trailing slash.
func (l Links) Base() string {
	return l.base
}

// Collection returns the list URL of kind.
func (l Links) Collection(kind domain.Kind) string {
	return l.base + APIPrefix + "/" + kind.String()
}

// Page returns the list URL of kind for the given page number.
func (l Links) Page(kind domain.Kind, page int) string {
	return l.Collection(kind) + "?page=" + strconv.Itoa(page)
}

// Entity returns the detail URL of the record of kind with the given ID.
func (l Links) Entity(kind domain.Kind, id int) string {
	return l.Collection(kind) + "/" + strconv.Itoa(id)
}

// Image returns the URL of a dinosaur image file.
func (l Links) Image(file string) string {
	if file == "" {
		return ""
	}
	return l.base + ImagePrefix + "/" + strings.TrimLeft(file, "/")
}

// Directory is the body of the API root: the list URL of every kind.
type Directory struct {
	Dinosaurs  string `json:"dinosaurs"`
	Diets      string `json:"diets"`
	Periods    string `json:"periods"`
	Locations  string `json:"locations"`
	Taxonomies string `json:"taxonomies"`
}

// Directory returns the list URLs of every kind.
func (l Links) Directory() Directory {
	return Directory{
		Dinosaurs:  l.Collection(domain.KindDinosaur),
		Diets:      l.Collection(domain.KindDiet),
		Periods:    l.Collection(domain.KindPeriod),
		Locations:  l.Collection(domain.KindLocation),
		Taxonomies: l.Collection(domain.KindTaxonomy),
	}
}
