package domain

import "fmt"

// Kind identifies one of the entity types served by the API. Its string value
// doubles as the first path segment of the entity's routes.
type Kind string

// Supported entity kinds
const (
	KindDinosaur Kind = "dinosaur"
	KindDiet     Kind = "diet"
	KindPeriod   Kind = "period"
	KindLocation Kind = "location"
	KindTaxonomy Kind = "taxonomy"
)

// Kinds lists every entity kind in seed dependency order: dinosaurs come last
// because they reference the other four.
var Kinds = []Kind{KindPeriod, KindDiet, KindLocation, KindTaxonomy, KindDinosaur}

// ParseKind maps a path segment to its Kind.
func ParseKind(segment string) (Kind, error) {
	k := Kind(segment)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, segment)
	}
	return k, nil
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDinosaur, KindDiet, KindPeriod, KindLocation, KindTaxonomy:
		return true
	}
	return false
}

// Plural returns the collection name used in the API directory.
func (k Kind) Plural() string {
	if k == KindTaxonomy {
		return "taxonomies"
	}
	return string(k) + "s"
}

func (k Kind) String() string {
	return string(k)
}
