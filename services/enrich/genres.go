package enrich

// Static TMDB genre table covering both movie and TV genre ids. Unknown ids
// map to the "Unknown" placeholder rather than being omitted.
var genreNames = map[int]string{
	28:    "Action",
	35:    "Comedy",
	18:    "Drama",
	27:    "Horror",
	878:   "Sci-Fi",
	53:    "Thriller",
	10749: "Romance",
	16:    "Animation",
	80:    "Crime",
	99:    "Documentary",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	10402: "Music",
	9648:  "Mystery",
	10770: "TV Movie",
	37:    "Western",
	10752: "War",
	10759: "Action & Adventure",
	10762: "Kids",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
}

const unknownGenre = "Unknown"

// resolveGenres maps genre ids to names, keeping the input order.
func resolveGenres(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := genreNames[id]
		if !ok {
			name = unknownGenre
		}
		names = append(names, name)
	}
	return names
}
