package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Diet classifies what a dinosaur ate.
type Diet struct {
	Key         uuid.UUID `json:"-"`
	ID          int       `json:"id"          validate:"gt=0"`
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`

	// Dinosaurs is the reverse relationship. It is only populated for
	// single-record lookups.
	Dinosaurs []Dinosaur `json:"-" validate:"-"`
}

// Period is a geological period, bounded in millions of years ago.
type Period struct {
	Key         uuid.UUID `json:"-"`
	ID          int       `json:"id"          validate:"gt=0"`
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	From        int       `json:"from"        validate:"gtfield=To"`
	To          int       `json:"to"          validate:"gte=0"`

	Dinosaurs []Dinosaur `json:"-" validate:"-"`
}

// Location is a place where fossils were found.
type Location struct {
	Key  uuid.UUID `json:"-"`
	ID   int       `json:"id"   validate:"gt=0"`
	Name string    `json:"name" validate:"required"`

	Dinosaurs []Dinosaur `json:"-" validate:"-"`
}

// Taxonomy is a node of the dinosaur classification tree. Parent is nil for
// the root.
type Taxonomy struct {
	Key         uuid.UUID `json:"-"`
	ID          int       `json:"id"          validate:"gt=0"`
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	Parent      *Taxonomy `json:"-"           validate:"-"`

	Dinosaurs []Dinosaur `json:"-" validate:"-"`
}

// Dinosaur is the central record. Its relationship fields hold the joined
// records, not just their keys.
type Dinosaur struct {
	Key         uuid.UUID  `json:"-"`
	ID          int        `json:"id"          validate:"gt=0"`
	Name        string     `json:"name"        validate:"required"`
	Description string     `json:"description" validate:"required"`
	Image       string     `json:"image"       validate:"required"`
	Size        string     `json:"size"        validate:"required"`
	Diet        Diet       `json:"-"           validate:"-"`
	Period      Period     `json:"-"           validate:"-"`
	Locations   []Location `json:"-"           validate:"-"`
	Taxonomies  []Taxonomy `json:"-"           validate:"-"`
}

// Validate checks the scalar fields of a Diet.
func (d *Diet) Validate() error { return validateRecord(KindDiet, d) }

// Validate checks the scalar fields of a Period.
func (p *Period) Validate() error { return validateRecord(KindPeriod, p) }

// Validate checks the scalar fields of a Location.
func (l *Location) Validate() error { return validateRecord(KindLocation, l) }

// Validate checks the scalar fields of a Taxonomy.
func (t *Taxonomy) Validate() error { return validateRecord(KindTaxonomy, t) }

// Validate checks the scalar fields of a Dinosaur and that its required
// references have been resolved.
func (d *Dinosaur) Validate() error {
	if err := validateRecord(KindDinosaur, d); err != nil {
		return err
	}
	if d.Diet.Key == uuid.Nil {
		return NewValidationError(KindDinosaur, "diet", "is required", ErrValidation)
	}
	if d.Period.Key == uuid.Nil {
		return NewValidationError(KindDinosaur, "period", "is required", ErrValidation)
	}
	return nil
}

func validateRecord(kind Kind, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		sentinel := ErrValidation
		if fe.Field() == "ID" {
			sentinel = ErrInvalidID
		}
		return NewValidationError(kind, fe.Field(), fmt.Sprintf("failed on the '%s' tag", fe.Tag()), sentinel)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
