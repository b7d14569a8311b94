package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/dinosaur-api/internal/api/shared"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/idparam"
	"github.com/phrazzld/dinosaur-api/internal/pagination"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/phrazzld/dinosaur-api/internal/projection"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// Resource ties the store reader of one entity kind to its projections.
type Resource[T, S, D any] struct {
	Kind   domain.Kind
	Reader store.Reader[T]
	View   projection.View[T, S, D]
}

// binding holds the two pipelines of one entity kind.
type binding struct {
	list   http.HandlerFunc
	lookup http.HandlerFunc
}

// CatalogHandler serves the list and lookup routes of every entity kind.
type CatalogHandler struct {
	bindings map[domain.Kind]binding
	links    projection.Links
	pageSize int
	logger   *slog.Logger
}

// NewCatalogHandler creates a handler over catalog. URLs in responses are
// built from links; list routes return at most pageSize results.
func NewCatalogHandler(
	catalog store.Catalog,
	links projection.Links,
	pageSize int,
	logger *slog.Logger,
) (*CatalogHandler, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: %d", pagination.ErrInvalidPageSize, pageSize)
	}
	if logger == nil {
		logger = slog.Default()
	}

	h := &CatalogHandler{
		links:    links,
		pageSize: pageSize,
		logger:   logger.With(slog.String("component", "catalog_handler")),
	}
	h.bindings = map[domain.Kind]binding{
		domain.KindDinosaur: bind(h, Resource[domain.Dinosaur, projection.DinosaurSummary, projection.DinosaurDetail]{
			Kind: domain.KindDinosaur, Reader: catalog.Dinosaurs(), View: projection.Dinosaurs(links),
		}),
		domain.KindDiet: bind(h, Resource[domain.Diet, projection.DietSummary, projection.DietDetail]{
			Kind: domain.KindDiet, Reader: catalog.Diets(), View: projection.Diets(links),
		}),
		domain.KindPeriod: bind(h, Resource[domain.Period, projection.PeriodSummary, projection.PeriodDetail]{
			Kind: domain.KindPeriod, Reader: catalog.Periods(), View: projection.Periods(links),
		}),
		domain.KindLocation: bind(h, Resource[domain.Location, projection.LocationSummary, projection.LocationDetail]{
			Kind: domain.KindLocation, Reader: catalog.Locations(), View: projection.Locations(links),
		}),
		domain.KindTaxonomy: bind(h, Resource[domain.Taxonomy, projection.TaxonomySummary, projection.TaxonomyDetail]{
			Kind: domain.KindTaxonomy, Reader: catalog.Taxonomies(), View: projection.Taxonomies(links),
		}),
	}
	return h, nil
}

// Bind registers every route of routes on r. The entity kind of a route is
// taken from its first path segment.
func (h *CatalogHandler) Bind(r chi.Router, routes []Route) error {
	for _, route := range routes {
		kind, err := kindOf(route.Path)
		if err != nil {
			return fmt.Errorf("route %s: %w", route.Path, err)
		}
		b, ok := h.bindings[kind]
		if !ok {
			return fmt.Errorf("route %s: no resource for %q", route.Path, kind)
		}

		switch route.Handler {
		case HandlerList:
			r.Get(route.Path, b.list)
		case HandlerLookup:
			r.Get(route.Path, b.lookup)
		default:
			return fmt.Errorf("route %s: unknown handler %s", route.Path, route.Handler)
		}
	}
	return nil
}

// Directory handles GET on the API root with the list URL of every kind.
func (h *CatalogHandler) Directory(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.links.Directory())
}

// handleError writes the response for err: a JSON error body when the error
// has a client message, an empty body otherwise.
func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if message := GetSafeErrorMessage(err); message != "" {
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}
	shared.RespondWithStatusAndLog(w, r, status, err)
}

func (h *CatalogHandler) pageInfo(kind domain.Kind, window pagination.Window) PageInfo {
	info := PageInfo{Count: window.Count, Pages: window.Pages}
	if window.HasNext {
		next := h.links.Page(kind, window.NextPage())
		info.Next = &next
	}
	if window.HasPrev {
		prev := h.links.Page(kind, window.PrevPage())
		info.Prev = &prev
	}
	return info
}

// bind builds the list and lookup pipelines of res.
func bind[T, S, D any](h *CatalogHandler, res Resource[T, S, D]) binding {
	list := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := pagination.ParsePage(r.URL.Query().Get("page"))

		records, count, err := res.Reader.FindPage(ctx, pagination.Offset(page, h.pageSize), h.pageSize)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		window, err := pagination.Paginate(count, h.pageSize, page)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		shared.RespondWithJSON(w, r, http.StatusOK, PageResponse[S]{
			Info:    h.pageInfo(res.Kind, window),
			Results: res.View.Summaries(records),
		})
	}

	lookup := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContextOrDefault(ctx, h.logger)

		raw := chi.URLParam(r, "id")
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}

		param, err := idparam.Parse(raw)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		if ids, ok := param.List(); ok {
			records, err := res.Reader.FindByIDs(ctx, ids)
			if err != nil {
				h.handleError(w, r, err)
				return
			}
			shared.RespondWithJSON(w, r, http.StatusOK, res.View.Render(projection.Many(records)))
			return
		}

		id, ok := param.Single()
		if !ok {
			log.Debug("identifier is not an integer",
				slog.String("kind", res.Kind.String()),
				slog.String("id", raw))
			h.handleError(w, r, fmt.Errorf("%w: id %q", store.NotFound(res.Kind), raw))
			return
		}

		record, err := res.Reader.FindByID(ctx, id)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, res.View.Render(projection.One(record)))
	}

	return binding{list: list, lookup: lookup}
}
