package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/dinosaur-api/internal/config"
	"github.com/phrazzld/dinosaur-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://dino.test"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	imageDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(imageDir, "1.jpg"), []byte("jpeg bytes"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(imageDir, "thumbs"), 0o700))

	return &config.Config{
		Server:     config.ServerConfig{Port: 0, LogLevel: "debug", BaseURL: testBaseURL},
		Database:   config.DatabaseConfig{Driver: config.DriverMemory},
		Collection: config.CollectionConfig{PageSize: 20},
		Static:     config.StaticConfig{ImageDir: imageDir},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	log, _ := logger.NewTestLogger()
	app, err := newApplication(context.Background(), testConfig(t), log)
	require.NoError(t, err)
	require.NoError(t, app.seedCatalog(context.Background()))
	return app
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	router, err := newTestApp(t).setupRouter()
	require.NoError(t, err)
	return router
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestSeededCatalogCounts(t *testing.T) {
	router := newTestRouter(t)

	counts := map[string]float64{
		"/api/period":   3,
		"/api/diet":     4,
		"/api/location": 7,
		"/api/taxonomy": 12,
		"/api/dinosaur": 12,
	}
	for target, want := range counts {
		w := get(t, router, target)
		require.Equal(t, http.StatusOK, w.Code, target)
		info := decodeJSON(t, w)["info"].(map[string]any)
		assert.Equal(t, want, info["count"], target)
	}
}

func TestDinosaurFirstPage(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/api/dinosaur?page=1")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	info := body["info"].(map[string]any)
	assert.Equal(t, float64(12), info["count"])
	assert.Equal(t, float64(1), info["pages"])
	assert.Nil(t, info["next"])
	assert.Nil(t, info["prev"])
	assert.Len(t, body["results"], 12)
}

func TestTaxonomyParentAndDinosaurs(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/api/taxonomy/2")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, map[string]any{
		"id":   float64(1),
		"name": "Dinosauria",
		"url":  testBaseURL + "/api/taxonomy/1",
	}, body["parent"])

	var names []string
	for _, d := range body["dinosaurs"].([]any) {
		names = append(names, d.(map[string]any)["name"].(string))
	}
	assert.ElementsMatch(t, []string{
		"Tyrannosaurus", "Brachiosaurus", "Velociraptor", "Baryonyx", "Suchomimus", "Gallimimus",
	}, names)
}

func TestDirectoryAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/api/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testBaseURL+"/api/dinosaur", decodeJSON(t, w)["dinosaurs"])

	w = get(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestImages(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/api/dinosaur/image/1.jpg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg bytes", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/dinosaur/image/missing.jpg").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/dinosaur/image/thumbs/").Code)
}

func TestMiddlewareHeaders(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/api/diet/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	req := httptest.NewRequest(http.MethodOptions, "/api/diet/1", nil)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	get(t, router, "/api/period/1")
	w := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/period/{id}"`)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
