package catalog

import "freecast/models"

// Fixed dataset served when TMDB is not configured or unreachable. The items
// mirror well-known TMDB records so downstream enrichment behaves exactly as
// it would on live data.

func intPtr(v int) *int { return &v }

var fallbackSearchItems = []models.RawCatalogItem{
	{
		ID:           603,
		Title:        "The Matrix",
		Overview:     "A computer programmer discovers reality is a simulation.",
		PosterPath:   "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		BackdropPath: "/fNG7i7RqMErkcqhohV2a6cV1Ehy.jpg",
		ReleaseDate:  "1999-03-30",
		VoteAverage:  8.7,
		VoteCount:    24000,
		GenreIDs:     []int{28, 878},
		MediaType:    "movie",
	},
	{
		ID:           27205,
		Title:        "Inception",
		Overview:     "A thief enters dreams to plant ideas.",
		PosterPath:   "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		BackdropPath: "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
		ReleaseDate:  "2010-07-15",
		VoteAverage:  8.8,
		VoteCount:    35000,
		GenreIDs:     []int{28, 878, 53},
		MediaType:    "movie",
	},
	{
		ID:           1399,
		Name:         "Game of Thrones",
		Overview:     "Noble families fight for the Iron Throne.",
		PosterPath:   "/7WUHnWGx5OO145IRxPDUkQSh4C7.jpg",
		BackdropPath: "/suopoADq0k8YZr4dQXcU6pToj6s.jpg",
		FirstAirDate: "2011-04-17",
		VoteAverage:  9.2,
		VoteCount:    45000,
		GenreIDs:     []int{18, 14, 10759},
		Seasons:      intPtr(8),
		Episodes:     intPtr(73),
		MediaType:    "tv",
	},
	{
		ID:           1396,
		Name:         "Breaking Bad",
		Overview:     "A chemistry teacher becomes a meth manufacturer.",
		PosterPath:   "/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
		BackdropPath: "/tsRy63Mu5cu8etL1X7ZLyf7UP1M.jpg",
		FirstAirDate: "2008-01-20",
		VoteAverage:  9.5,
		VoteCount:    55000,
		GenreIDs:     []int{18, 80, 53},
		Seasons:      intPtr(5),
		Episodes:     intPtr(62),
		MediaType:    "tv",
	},
}

var fallbackTrendingItems = []models.RawCatalogItem{
	{
		ID:           155,
		Title:        "The Dark Knight",
		Overview:     "Batman faces the Joker in Gotham City.",
		PosterPath:   "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		BackdropPath: "/hqkIcbrOHL86UncnHIsHVcVmzue.jpg",
		ReleaseDate:  "2008-07-18",
		VoteAverage:  9.0,
		VoteCount:    32000,
		GenreIDs:     []int{28, 80, 18},
		MediaType:    "movie",
	},
	{
		ID:           680,
		Title:        "Pulp Fiction",
		Overview:     "Interconnected stories of crime in Los Angeles.",
		PosterPath:   "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
		BackdropPath: "/4cDFJr4HnXN5AdPw4AKrmLlMWdO.jpg",
		ReleaseDate:  "1994-09-10",
		VoteAverage:  8.9,
		VoteCount:    27000,
		GenreIDs:     []int{80, 18},
		MediaType:    "movie",
	},
	{
		ID:           1402,
		Name:         "The Walking Dead",
		Overview:     "Survivors navigate a zombie apocalypse.",
		PosterPath:   "/rqeYMLryjcawh2JeRpCVUDXYM5b.jpg",
		BackdropPath: "/KoYWXbnYuS3b0GyQPkbuexlVK9.jpg",
		FirstAirDate: "2010-10-31",
		VoteAverage:  8.1,
		VoteCount:    18000,
		GenreIDs:     []int{10759, 18, 27},
		Seasons:      intPtr(11),
		Episodes:     intPtr(177),
		MediaType:    "tv",
	},
	{
		ID:           1408,
		Name:         "House",
		Overview:     "Brilliant but misanthropic doctor solves medical mysteries.",
		PosterPath:   "/3Cz7ySOQJmqiuTdrc6CY0r65yDI.jpg",
		BackdropPath: "/cKrhEw44GJlBnFOmgGqTdwjC6wm.jpg",
		FirstAirDate: "2004-11-16",
		VoteAverage:  8.6,
		VoteCount:    15000,
		GenreIDs:     []int{18, 9648},
		Seasons:      intPtr(8),
		Episodes:     intPtr(176),
		MediaType:    "tv",
	},
}

func filterByContentType(items []models.RawCatalogItem, contentType string) []models.RawCatalogItem {
	if contentType != "movie" && contentType != "series" {
		return copyItems(items)
	}
	var kept []models.RawCatalogItem
	for _, item := range items {
		isSeries := item.FirstAirDate != ""
		if (contentType == "series") == isSeries {
			kept = append(kept, item)
		}
	}
	return kept
}

func copyItems(items []models.RawCatalogItem) []models.RawCatalogItem {
	cloned := make([]models.RawCatalogItem, len(items))
	copy(cloned, items)
	return cloned
}

func fallbackSearch(page int, contentType string) *models.CatalogPage {
	results := filterByContentType(fallbackSearchItems, contentType)
	return &models.CatalogPage{
		Results:      results,
		TotalResults: len(results),
		TotalPages:   1,
		Page:         page,
	}
}

func fallbackTrending(contentType string) []models.RawCatalogItem {
	return filterByContentType(fallbackTrendingItems, contentType)
}
