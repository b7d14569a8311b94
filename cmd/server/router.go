package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/dinosaur-api/internal/api"
	apiMiddleware "github.com/phrazzld/dinosaur-api/internal/api/middleware"
	"github.com/phrazzld/dinosaur-api/internal/projection"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.SecurityHeaders)
	r.Use(apiMiddleware.CORS)
	r.Use(app.metrics.Middleware)

	catalogHandler, err := api.NewCatalogHandler(
		app.catalog,
		projection.NewLinks(app.config.Server.BaseURL),
		app.config.Collection.PageSize,
		app.logger,
	)
	if err != nil {
		return nil, err
	}

	var bindErr error
	r.Route(projection.APIPrefix, func(r chi.Router) {
		r.Get("/", catalogHandler.Directory)

		images := strings.TrimPrefix(projection.ImagePrefix, projection.APIPrefix)
		r.Get(images+"/*", imageHandler(app.config.Static.ImageDir))

		bindErr = catalogHandler.Bind(r, api.Routes)
	})
	if bindErr != nil {
		return nil, bindErr
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", app.metrics.Handler())

	return r, nil
}

// imageHandler serves the files of dir under projection.ImagePrefix.
// Directory listings are not served.
func imageHandler(dir string) http.HandlerFunc {
	files := http.StripPrefix(projection.ImagePrefix, http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
