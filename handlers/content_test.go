package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"freecast/models"
	"freecast/services/availability"
	"freecast/services/catalog"
	"freecast/services/enrich"
	"freecast/services/platforms"
	"freecast/utils"
)

// newTestRouter wires the full stack with no TMDB key, so the catalog
// gateway serves the fallback dataset.
func newTestRouter(t *testing.T) (*platforms.Registry, http.Handler) {
	t.Helper()
	registry := platforms.NewDefault()
	gw := catalog.NewClient("", t.TempDir(), 1)
	svc := enrich.NewService(gw, availability.NewRegistrySource(registry))

	router := utils.NewRouter("")
	NewContentHandler(svc, registry, gw.IsConfigured()).Register(router)
	return registry, router
}

func doGET(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeSearch(t *testing.T, rec *httptest.ResponseRecorder) models.SearchResponse {
	t.Helper()
	var resp models.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSearchFallbackReturnsMatrix(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doGET(t, router, "/api/search?q=matrix&page=1&content_type=movie")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSearch(t, rec)
	require.NotEmpty(t, resp.Results)
	require.LessOrEqual(t, len(resp.Results), 28)
	require.Equal(t, "movie", resp.ContentType)

	var matrix *models.ContentItem
	for i := range resp.Results {
		if resp.Results[i].Title == "The Matrix" {
			matrix = &resp.Results[i]
		}
	}
	require.NotNil(t, matrix, "fallback search must contain The Matrix")
	require.Equal(t, models.ContentTypeMovie, matrix.ContentType)
	require.NotEmpty(t, matrix.Platforms)
}

func TestSearchValidation(t *testing.T) {
	_, router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
	}{
		{"missing query", "/api/search"},
		{"blank query", "/api/search?q=%20"},
		{"page zero", "/api/search?q=x&page=0"},
		{"page too large", "/api/search?q=x&page=501"},
		{"page not a number", "/api/search?q=x&page=abc"},
		{"bad content type", "/api/search?q=x&content_type=podcast"},
	}
	for _, tt := range tests {
		rec := doGET(t, router, tt.target)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, tt.name)
	}
}

func TestSearchUnknownPlatformFilterIsEmptyNotError(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doGET(t, router, "/api/search?q=x&platform=unknown-platform-key")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSearch(t, rec)
	require.Empty(t, resp.Results)
	require.Equal(t, "unknown-platform-key", resp.PlatformFilter)
}

func TestTrending(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doGET(t, router, "/api/trending?content_type=all")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TrendingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Results)
	require.LessOrEqual(t, len(resp.Results), 28)
	for _, item := range resp.Results {
		require.NotEmpty(t, item.Platforms, "trending items always carry platforms")
	}

	rec = doGET(t, router, "/api/trending?content_type=bogus")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlatformsListing(t *testing.T) {
	registry, router := newTestRouter(t)

	rec := doGET(t, router, "/api/platforms")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Platforms map[string]models.PlatformDescriptor `json:"platforms"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Platforms, registry.Len())
	require.Contains(t, resp.Platforms, "tubi")
	require.Equal(t, "Tubi", resp.Platforms["tubi"].Name)
}

func TestPlatformContent(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doGET(t, router, "/api/platforms/tubi?content_type=multi&page=1")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSearch(t, rec)
	require.NotEmpty(t, resp.Results)
	for _, item := range resp.Results {
		require.Len(t, item.Platforms, 1)
		require.Equal(t, "tubi", item.Platforms[0].Platform)
	}
}

func TestPlatformContentUnknownKey(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doGET(t, router, "/api/platforms/not-a-platform")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCastSupportSummary(t *testing.T) {
	registry, router := newTestRouter(t)

	rec := doGET(t, router, "/api/cast-support")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CastingCapabilities platforms.CastSummary `json:"casting_capabilities"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, registry.Summary(), resp.CastingCapabilities)
	require.Equal(t, registry.Len(), resp.CastingCapabilities.TotalPlatforms)
}

func TestHealth(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doGET(t, router, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string            `json:"status"`
		APIKeys map[string]string `json:"api_keys"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "healthy", resp.Status)
	require.Equal(t, "missing", resp.APIKeys["tmdb"])
}

func TestRoot(t *testing.T) {
	registry, router := newTestRouter(t)

	rec := doGET(t, router, "/api/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status    string `json:"status"`
		Platforms int    `json:"platforms"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "online", resp.Status)
	require.Equal(t, registry.Len(), resp.Platforms)
}
