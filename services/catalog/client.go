package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"freecast/models"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"

	// Upstream calls are single-attempt: bound the wait and fall back.
	requestTimeout = 10 * time.Second
)

// Client is the catalog gateway. It talks to TMDB when a key is configured
// and serves the fixed fallback dataset otherwise, so callers always get a
// usable page of raw items and never see upstream failures.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *fileCache
}

func NewClient(apiKey, cacheDir string, ttlHours int) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
		cache:   newFileCache(cacheDir, ttlHours),
	}
}

// IsConfigured reports whether an upstream API key is present. Without one
// the client permanently serves the fallback dataset.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type tmdbPage struct {
	Page         int                     `json:"page"`
	Results      []models.RawCatalogItem `json:"results"`
	TotalResults int                     `json:"total_results"`
	TotalPages   int                     `json:"total_pages"`
}

// Search fetches one page of raw catalog items matching the query.
// contentType is multi, movie or series. Provider "person" records are
// excluded. Upstream failure of any kind degrades to the fallback dataset.
func (c *Client) Search(ctx context.Context, query string, page int, contentType string) *models.CatalogPage {
	if !c.IsConfigured() {
		return fallbackSearch(page, contentType)
	}

	endpoint := c.baseURL + "/search/multi"
	switch contentType {
	case "movie":
		endpoint = c.baseURL + "/search/movie"
	case "series":
		endpoint = c.baseURL + "/search/tv"
	}

	params := url.Values{
		"api_key":       []string{c.apiKey},
		"query":         []string{query},
		"page":          []string{strconv.Itoa(page)},
		"include_adult": []string{"false"},
	}

	key := cacheKey("search", contentType, query, strconv.Itoa(page))
	var resp tmdbPage
	if ok, _ := c.cache.get(key, &resp); !ok {
		if err := c.doGET(ctx, endpoint, params, &resp); err != nil {
			log.Printf("[catalog] tmdb search failed query=%q type=%s: %v; using fallback dataset", query, contentType, err)
			return fallbackSearch(page, contentType)
		}
		_ = c.cache.set(key, resp)
	}

	return &models.CatalogPage{
		Results:      dropNonContent(resp.Results),
		TotalResults: resp.TotalResults,
		TotalPages:   resp.TotalPages,
		Page:         resp.Page,
	}
}

// Trending fetches the weekly trending feed. contentType is all, movie or
// series. No pagination; upstream failure degrades to the fallback dataset.
func (c *Client) Trending(ctx context.Context, contentType string) []models.RawCatalogItem {
	if !c.IsConfigured() {
		return fallbackTrending(contentType)
	}

	window := "all"
	switch contentType {
	case "movie":
		window = "movie"
	case "series":
		window = "tv"
	}
	endpoint := fmt.Sprintf("%s/trending/%s/week", c.baseURL, window)
	params := url.Values{"api_key": []string{c.apiKey}}

	key := cacheKey("trending", contentType)
	var resp tmdbPage
	if ok, _ := c.cache.get(key, &resp); !ok {
		if err := c.doGET(ctx, endpoint, params, &resp); err != nil {
			log.Printf("[catalog] tmdb trending failed type=%s: %v; using fallback dataset", contentType, err)
			return fallbackTrending(contentType)
		}
		_ = c.cache.set(key, resp)
	}

	return dropNonContent(resp.Results)
}

func (c *Client) doGET(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// dropNonContent removes provider records that are not movies or series,
// such as the person entries multi search returns.
func dropNonContent(items []models.RawCatalogItem) []models.RawCatalogItem {
	kept := items[:0:0]
	for _, item := range items {
		if item.MediaType == "person" {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
