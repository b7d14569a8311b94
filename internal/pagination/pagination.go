// Package pagination computes the offset window and navigation state of a
// paged list. It is a pure function of the total count, the page size and the
// requested page.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of items per page when none is configured.
const DefaultPageSize = 20

var (
	// ErrPageNotFound is returned when the requested page lies beyond the
	// last page of a non-empty collection.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidPageSize is returned for a page size below 1.
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// Window describes one page of a collection.
type Window struct {
	Page   int
	Offset int
	Limit  int
	Count  int
	Pages  int

	HasNext bool
	HasPrev bool
}

// NextPage returns the page after w. Only meaningful when HasNext is set.
func (w Window) NextPage() int { return w.Page + 1 }

// PrevPage returns the page before w. Only meaningful when HasPrev is set.
func (w Window) PrevPage() int { return w.Page - 1 }

// ParsePage converts a raw page query value into a page number. Absent,
// non-numeric, zero and negative values all mean the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset returns the number of items that precede page. Pages below 1 are
// treated as the first page; offsets past math.MaxInt saturate.
func Offset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// Paginate computes the window for requestedPage over totalCount items.
// A requested page below 1, or any page of an empty collection, is treated
// as the first page.
func Paginate(totalCount, pageSize, requestedPage int) (Window, error) {
	if pageSize < 1 {
		return Window{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	if totalCount < 0 {
		totalCount = 0
	}
	if requestedPage < 1 {
		requestedPage = 1
	}

	pages := (totalCount + pageSize - 1) / pageSize
	// An empty collection has a single, empty first page.
	if pages == 0 {
		requestedPage = 1
	}
	if pages > 0 && requestedPage > pages {
		return Window{}, fmt.Errorf("%w: page %d of %d", ErrPageNotFound, requestedPage, pages)
	}

	return Window{
		Page:    requestedPage,
		Offset:  Offset(requestedPage, pageSize),
		Limit:   pageSize,
		Count:   totalCount,
		Pages:   pages,
		HasNext: requestedPage < pages,
		HasPrev: requestedPage >= 2,
	}, nil
}
