// Package idparam parses the {id} path parameter of lookup routes. The
// parameter may hold a single integer, a comma separated list of integers or
// a bracketed JSON array of integers.
package idparam

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedIDList is returned for bracket syntax that is not a JSON array
// of integers, and for comma separated lists with a non-integer segment.
var ErrMalformedIDList = errors.New("malformed id list")

var bracketList = regexp.MustCompile(`\[.+\]$`)

// Param is the parsed form of an {id} parameter. Exactly one of the three
// shapes is set: a single integer, a list of integers, or the raw string for
// an identifier that is not an integer.
type Param struct {
	single int
	list   []int
	raw    string
	shape  shape
}

type shape int

// The zero shape marks the Param returned with an error; it matches no
// accessor.
const (
	shapeInvalid shape = iota
	shapeRaw
	shapeSingle
	shapeList
)

// Single returns the integer and true when the parameter named one id.
func (p Param) Single() (int, bool) {
	return p.single, p.shape == shapeSingle
}

// List returns the ids and true when the parameter named a list.
func (p Param) List() ([]int, bool) {
	return p.list, p.shape == shapeList
}

// Raw returns the original string and true when the parameter was neither an
// integer nor a list.
func (p Param) Raw() (string, bool) {
	return p.raw, p.shape == shapeRaw
}

// IsList reports whether the parameter named more than a single identifier.
func (p Param) IsList() bool {
	return p.shape == shapeList
}

// Parse normalizes raw into a Param. Every input yields either a Param or an
// error wrapping ErrMalformedIDList.
func Parse(raw string) (Param, error) {
	if bracketList.MatchString(raw) {
		var elems []*int
		if err := json.Unmarshal([]byte(raw), &elems); err != nil {
			return Param{}, fmt.Errorf("%w: %q", ErrMalformedIDList, raw)
		}
		ids := make([]int, 0, len(elems))
		for i, elem := range elems {
			if elem == nil {
				return Param{}, fmt.Errorf("%w: element %d of %q is null", ErrMalformedIDList, i, raw)
			}
			ids = append(ids, *elem)
		}
		return Param{list: ids, shape: shapeList}, nil
	}

	hasBracket := strings.ContainsAny(raw, "[]")

	if strings.Contains(raw, ",") && !hasBracket && len(raw) > 1 {
		segments := strings.Split(raw, ",")
		ids := make([]int, 0, len(segments))
		for _, segment := range segments {
			id, err := strconv.Atoi(strings.TrimSpace(segment))
			if err != nil {
				return Param{}, fmt.Errorf("%w: segment %q of %q is not an integer",
					ErrMalformedIDList, segment, raw)
			}
			ids = append(ids, id)
		}
		return Param{list: ids, shape: shapeList}, nil
	}

	if hasBracket {
		return Param{}, fmt.Errorf("%w: %q", ErrMalformedIDList, raw)
	}

	if id, err := strconv.Atoi(raw); err == nil {
		return Param{single: id, shape: shapeSingle}, nil
	}

	return Param{raw: raw, shape: shapeRaw}, nil
}
