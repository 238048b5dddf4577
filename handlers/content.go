package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"freecast/models"
	"freecast/services/enrich"
	"freecast/services/platforms"
)

// enrichService is the slice of the enrichment pipeline the HTTP layer uses.
type enrichService interface {
	Search(ctx context.Context, query string, page int, contentType, platformFilter string) *models.SearchResponse
	Trending(ctx context.Context, contentType string) *models.TrendingResponse
}

var _ enrichService = (*enrich.Service)(nil)

const (
	maxSearchPage   = 500
	maxPlatformPage = 100
)

var castingProtocols = []string{"chromecast", "airplay", "dlna"}

type ContentHandler struct {
	Service        enrichService
	Registry       *platforms.Registry
	TMDBConfigured bool
}

func NewContentHandler(service enrichService, registry *platforms.Registry, tmdbConfigured bool) *ContentHandler {
	return &ContentHandler{Service: service, Registry: registry, TMDBConfigured: tmdbConfigured}
}

// Register attaches all content routes to the router.
func (h *ContentHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/api/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/api/trending", h.Trending).Methods(http.MethodGet)
	r.HandleFunc("/api/platforms", h.Platforms).Methods(http.MethodGet)
	r.HandleFunc("/api/platforms/{platformKey}", h.PlatformContent).Methods(http.MethodGet)
	r.HandleFunc("/api/cast-support", h.CastSupport).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
}

func (h *ContentHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "FreeCast API is running!",
		"status":           "online",
		"platforms":        h.Registry.Len(),
		"casting_support":  castingProtocols,
		"tv_compatibility": true,
	})
}

func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusUnprocessableEntity, "query parameter q is required")
		return
	}

	page, ok := parsePage(r.URL.Query().Get("page"), maxSearchPage)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "page must be between 1 and 500")
		return
	}

	contentType, ok := parseContentType(r.URL.Query().Get("content_type"), "multi")
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "content_type must be one of multi, movie, series")
		return
	}

	platform := strings.TrimSpace(r.URL.Query().Get("platform"))

	resp := h.Service.Search(r.Context(), query, page, contentType, platform)
	writeJSON(w, http.StatusOK, resp)
}

func (h *ContentHandler) Trending(w http.ResponseWriter, r *http.Request) {
	contentType, ok := parseContentType(r.URL.Query().Get("content_type"), "all")
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "content_type must be one of all, movie, series")
		return
	}

	resp := h.Service.Trending(r.Context(), contentType)
	writeJSON(w, http.StatusOK, resp)
}

func (h *ContentHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"platforms": h.Registry.Map()})
}

// PlatformContent serves a page of popular content constrained to one
// platform. Unknown platform keys are a 404, unlike the search platform
// filter which silently drops items.
func (h *ContentHandler) PlatformContent(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["platformKey"]
	if !h.Registry.Has(key) {
		writeError(w, http.StatusNotFound, "platform not found")
		return
	}

	page, ok := parsePage(r.URL.Query().Get("page"), maxPlatformPage)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "page must be between 1 and 100")
		return
	}

	contentType, ok := parseContentType(r.URL.Query().Get("content_type"), "multi")
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "content_type must be one of multi, movie, series")
		return
	}

	resp := h.Service.Search(r.Context(), "popular", page, contentType, key)
	writeJSON(w, http.StatusOK, resp)
}

func (h *ContentHandler) CastSupport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"casting_capabilities": h.Registry.Summary(),
		"supported_protocols":  []string{"Google Cast", "Apple AirPlay", "DLNA"},
		"tv_optimized":         true,
	})
}

func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	tmdbState := "missing"
	if h.TMDBConfigured {
		tmdbState = "configured"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"api_keys":        map[string]string{"tmdb": tmdbState},
		"platforms_count": h.Registry.Len(),
		"content_types":   []string{"movie", "series"},
		"casting_support": castingProtocols,
	})
}

// parsePage parses a 1-based page number, defaulting to 1 when absent.
func parsePage(raw string, max int) (int, bool) {
	if strings.TrimSpace(raw) == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 || page > max {
		return 0, false
	}
	return page, true
}

// parseContentType validates the content type against the route's whitelist.
// def is the wildcard value ("multi" for search, "all" for trending) and is
// also used when the parameter is absent.
func parseContentType(raw, def string) (string, bool) {
	ct := strings.ToLower(strings.TrimSpace(raw))
	switch ct {
	case "":
		return def, true
	case def, "movie", "series":
		return ct, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
