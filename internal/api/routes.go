package api

import (
	"fmt"
	"strings"

	"github.com/phrazzld/dinosaur-api/internal/domain"
)

// HandlerKind selects the pipeline a route is bound to.
type HandlerKind int

const (
	// HandlerList serves a paginated list of summaries.
	HandlerList HandlerKind = iota + 1

	// HandlerLookup serves one record, or several when the id is a list.
	HandlerLookup
)

func (k HandlerKind) String() string {
	switch k {
	case HandlerList:
		return "list"
	case HandlerLookup:
		return "lookup"
	default:
		return fmt.Sprintf("HandlerKind(%d)", int(k))
	}
}

// Route is one entry of the route table. The first path segment names the
// entity kind the route serves.
type Route struct {
	Path    string
	Handler HandlerKind
}

// Routes is the route table of the API, relative to its mount point.
var Routes = []Route{
	{Path: "/dinosaur", Handler: HandlerList},
	{Path: "/dinosaur/{id}", Handler: HandlerLookup},
	{Path: "/diet", Handler: HandlerList},
	{Path: "/diet/{id}", Handler: HandlerLookup},
	{Path: "/period", Handler: HandlerList},
	{Path: "/period/{id}", Handler: HandlerLookup},
	{Path: "/location", Handler: HandlerList},
	{Path: "/location/{id}", Handler: HandlerLookup},
	{Path: "/taxonomy", Handler: HandlerList},
	{Path: "/taxonomy/{id}", Handler: HandlerLookup},
}

// kindOf returns the entity kind named by the first segment of path.
func kindOf(path string) (domain.Kind, error) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return domain.ParseKind(segment)
}
