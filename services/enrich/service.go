package enrich

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"freecast/models"
	"freecast/services/availability"
	"freecast/services/catalog"
)

// catalogGateway is the slice of the catalog client the orchestrator needs.
type catalogGateway interface {
	Search(ctx context.Context, query string, page int, contentType string) *models.CatalogPage
	Trending(ctx context.Context, contentType string) []models.RawCatalogItem
}

var _ catalogGateway = (*catalog.Client)(nil)

const (
	// Result sets are capped regardless of what the provider returns.
	maxResults = 28

	imageBaseURL = "https://image.tmdb.org/t/p/"
	posterSize   = "w500"
	backdropSize = "w1280"

	enrichWorkers = 8
)

// Service coordinates the enrichment pipeline: fetch raw items, classify,
// resolve availability, aggregate casting, assemble the visible record.
type Service struct {
	catalog catalogGateway
	source  availability.Source
}

func NewService(gw catalogGateway, source availability.Source) *Service {
	return &Service{catalog: gw, source: source}
}

// Search fetches and enriches one page of search results. contentType is
// multi, movie or series. A platform filter restricts every item to that
// single platform; items the filter cannot satisfy are dropped entirely.
func (s *Service) Search(ctx context.Context, query string, page int, contentType, platformFilter string) *models.SearchResponse {
	pageData := s.catalog.Search(ctx, query, page, contentType)
	results := s.enrichAll(pageData.Results, platformFilter)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return &models.SearchResponse{
		Results:        results,
		TotalResults:   pageData.TotalResults,
		Page:           pageData.Page,
		TotalPages:     pageData.TotalPages,
		ContentType:    contentType,
		PlatformFilter: platformFilter,
	}
}

// Trending fetches and enriches the weekly trending feed. contentType is
// all, movie or series. The raw list is truncated before enrichment to bound
// the work.
func (s *Service) Trending(ctx context.Context, contentType string) *models.TrendingResponse {
	items := s.catalog.Trending(ctx, contentType)
	if len(items) > maxResults {
		items = items[:maxResults]
	}
	return &models.TrendingResponse{Results: s.enrichAll(items, "")}
}

// enrichAll enriches items with a bounded worker pool. Each item is
// independent; output order matches input order, with dropped items removed.
func (s *Service) enrichAll(items []models.RawCatalogItem, platformFilter string) []models.ContentItem {
	enriched := make([]*models.ContentItem, len(items))
	p := pool.New().WithMaxGoroutines(enrichWorkers)
	for i := range items {
		p.Go(func() {
			enriched[i] = s.enrichOne(items[i], platformFilter)
		})
	}
	p.Wait()

	out := make([]models.ContentItem, 0, len(items))
	for _, item := range enriched {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

// enrichOne builds the visible record for one raw item, or nil when the item
// has no platform availability and must be dropped.
func (s *Service) enrichOne(raw models.RawCatalogItem, platformFilter string) *models.ContentItem {
	ct := classifyContentType(raw)

	avail := s.source.Resolve(raw.ID, ct, platformFilter)
	if len(avail) == 0 {
		return nil
	}

	item := &models.ContentItem{
		ID:           raw.ID,
		Title:        displayTitle(raw, ct),
		Overview:     raw.Overview,
		PosterPath:   imageURL(raw.PosterPath, posterSize),
		BackdropPath: imageURL(raw.BackdropPath, backdropSize),
		ReleaseDate:  raw.ReleaseDate,
		FirstAirDate: raw.FirstAirDate,
		VoteAverage:  raw.VoteAverage,
		VoteCount:    raw.VoteCount,
		GenreNames:   resolveGenres(raw.GenreIDs),
		Platforms:    avail,
		ContentType:  ct,
		CastSupport:  availability.AggregateCastSupport(avail),
	}
	if ct == models.ContentTypeSeries {
		item.Seasons = raw.Seasons
		item.Episodes = raw.Episodes
	}
	return item
}

// classifyContentType decides movie vs series. A present first-air date wins,
// then a release date; otherwise the provider's media-type tag decides.
func classifyContentType(raw models.RawCatalogItem) models.ContentType {
	switch {
	case raw.FirstAirDate != "":
		return models.ContentTypeSeries
	case raw.ReleaseDate != "":
		return models.ContentTypeMovie
	case raw.MediaType == "tv":
		return models.ContentTypeSeries
	default:
		return models.ContentTypeMovie
	}
}

// displayTitle picks the provider's movie title or series name, whichever
// applies, falling back to the other when the expected field is empty.
func displayTitle(raw models.RawCatalogItem, ct models.ContentType) string {
	if ct == models.ContentTypeSeries {
		if raw.Name != "" {
			return raw.Name
		}
		return raw.Title
	}
	if raw.Title != "" {
		return raw.Title
	}
	return raw.Name
}

// imageURL resolves a provider path fragment into an absolute CDN URL, or
// nil when the provider supplied no image.
func imageURL(path, size string) *string {
	if path == "" {
		return nil
	}
	u := imageBaseURL + size + path
	return &u
}
