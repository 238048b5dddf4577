package models

// ContentType distinguishes movies from series throughout the pipeline.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// CastSupport is the per-item (or per-platform) casting capability vector.
type CastSupport struct {
	Chromecast bool `json:"chromecast"`
	Airplay    bool `json:"airplay"`
	DLNA       bool `json:"dlna"`
}

// PlatformDescriptor describes one streaming platform in the registry.
// Descriptors are loaded once at startup and never mutated.
type PlatformDescriptor struct {
	Name         string        `json:"name"`
	BaseURL      string        `json:"base_url"`
	Description  string        `json:"description"`
	ContentTypes []ContentType `json:"content_types"`
	CastSupport  CastSupport   `json:"cast_support"`
}

// SupportsContentType reports whether the platform carries the given content type.
func (d PlatformDescriptor) SupportsContentType(ct ContentType) bool {
	for _, t := range d.ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// PlatformAvailability is one synthesized "watch here" entry attached to a
// content item. Created fresh per enrichment call, never persisted.
type PlatformAvailability struct {
	Platform    string      `json:"platform"`
	Name        string      `json:"name"`
	URL         string      `json:"url"`
	Quality     string      `json:"quality"`
	Cost        string      `json:"cost"`
	Description string      `json:"description"`
	CastSupport CastSupport `json:"cast_support"`
}

// RawCatalogItem is the catalog provider's unmodified record. Search results
// and trending feeds share this shape; series-specific fields are empty for
// movies and vice versa.
type RawCatalogItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids"`
	Seasons      *int    `json:"number_of_seasons,omitempty"`
	Episodes     *int    `json:"number_of_episodes,omitempty"`
	// MediaType is only populated by multi search and trending feeds.
	// "person" entries are skipped by the gateway.
	MediaType string `json:"media_type"`
}

// CatalogPage is one page of raw catalog results with provider pagination.
type CatalogPage struct {
	Results      []RawCatalogItem
	TotalResults int
	TotalPages   int
	Page         int
}

// ContentItem is the externally visible enriched record.
type ContentItem struct {
	ID           int64                  `json:"id"`
	Title        string                 `json:"title"`
	Overview     string                 `json:"overview"`
	PosterPath   *string                `json:"poster_path"`
	BackdropPath *string                `json:"backdrop_path"`
	ReleaseDate  string                 `json:"release_date"`
	FirstAirDate string                 `json:"first_air_date"`
	VoteAverage  float64                `json:"vote_average"`
	VoteCount    int                    `json:"vote_count"`
	GenreNames   []string               `json:"genre_names"`
	Platforms    []PlatformAvailability `json:"platforms"`
	ContentType  ContentType            `json:"content_type"`
	Seasons      *int                   `json:"seasons,omitempty"`
	Episodes     *int                   `json:"episodes,omitempty"`
	CastSupport  CastSupport            `json:"cast_support"`
}

// SearchResponse is the payload for search and platform-content requests.
type SearchResponse struct {
	Results        []ContentItem `json:"results"`
	TotalResults   int           `json:"total_results"`
	Page           int           `json:"page"`
	TotalPages     int           `json:"total_pages"`
	ContentType    string        `json:"content_type,omitempty"`
	PlatformFilter string        `json:"platform_filter,omitempty"`
}

// TrendingResponse is the payload for trending requests.
type TrendingResponse struct {
	Results []ContentItem `json:"results"`
}
