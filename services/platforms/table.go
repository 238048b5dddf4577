package platforms

import "freecast/models"

var (
	bothTypes  = []models.ContentType{models.ContentTypeMovie, models.ContentTypeSeries}
	movieOnly  = []models.ContentType{models.ContentTypeMovie}
	seriesOnly = []models.ContentType{models.ContentTypeSeries}
)

func cast(chromecast, airplay, dlna bool) models.CastSupport {
	return models.CastSupport{Chromecast: chromecast, Airplay: airplay, DLNA: dlna}
}

// defaultEntries is the production platform table. Availability against these
// platforms is synthesized; the table itself (names, URLs, casting matrices)
// is the stable part of the product.
var defaultEntries = []Entry{
	{"tubi", models.PlatformDescriptor{
		Name:         "Tubi",
		BaseURL:      "https://tubitv.com",
		Description:  "Free movies and TV shows with ads",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, true),
	}},
	{"pluto", models.PlatformDescriptor{
		Name:         "Pluto TV",
		BaseURL:      "https://pluto.tv",
		Description:  "Free streaming TV and movies",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"crackle", models.PlatformDescriptor{
		Name:         "Crackle",
		BaseURL:      "https://crackle.com",
		Description:  "Sony Pictures free streaming",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, true),
	}},
	{"imdb", models.PlatformDescriptor{
		Name:         "IMDb TV",
		BaseURL:      "https://imdb.com/tv",
		Description:  "Amazon's free streaming service",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"youtube", models.PlatformDescriptor{
		Name:         "YouTube Movies",
		BaseURL:      "https://youtube.com/movies",
		Description:  "Free movies on YouTube",
		ContentTypes: movieOnly,
		CastSupport:  cast(true, true, true),
	}},
	{"roku", models.PlatformDescriptor{
		Name:         "Roku Channel",
		BaseURL:      "https://therokuchannel.roku.com",
		Description:  "Roku's free streaming platform",
		ContentTypes: bothTypes,
		CastSupport:  cast(false, true, true),
	}},
	{"vudu", models.PlatformDescriptor{
		Name:         "Vudu Free",
		BaseURL:      "https://vudu.com/content/movies/free",
		Description:  "Walmart's free movie section",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"peacock", models.PlatformDescriptor{
		Name:         "Peacock Free",
		BaseURL:      "https://peacocktv.com/free",
		Description:  "NBCUniversal's free tier",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"plex", models.PlatformDescriptor{
		Name:         "Plex TV",
		BaseURL:      "https://plex.tv/en-us/tv",
		Description:  "Free movies and TV shows on Plex",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, true),
	}},
	{"xumo", models.PlatformDescriptor{
		Name:         "Xumo Play",
		BaseURL:      "https://xumo.com",
		Description:  "Comcast's free streaming service",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, false, true),
	}},
	{"philo", models.PlatformDescriptor{
		Name:         "Philo Free",
		BaseURL:      "https://philo.com/free",
		Description:  "Free content from Philo",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"freevee", models.PlatformDescriptor{
		Name:         "Amazon Freevee",
		BaseURL:      "https://freevee.com",
		Description:  "Amazon's ad-supported free service",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"kanopy", models.PlatformDescriptor{
		Name:         "Kanopy",
		BaseURL:      "https://kanopy.com",
		Description:  "Free movies with library card",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"hoopla", models.PlatformDescriptor{
		Name:         "Hoopla Digital",
		BaseURL:      "https://hoopladigital.com",
		Description:  "Library-based free streaming",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"cw", models.PlatformDescriptor{
		Name:         "The CW",
		BaseURL:      "https://cwtv.com",
		Description:  "Free CW shows and episodes",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"cbssports", models.PlatformDescriptor{
		Name:         "CBS Sports HQ",
		BaseURL:      "https://cbssports.com/live",
		Description:  "Free sports content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, false, false),
	}},
	{"filmrise", models.PlatformDescriptor{
		Name:         "FilmRise",
		BaseURL:      "https://filmrise.com",
		Description:  "Free classic and indie content",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, true),
	}},
	{"redbox", models.PlatformDescriptor{
		Name:         "Redbox Free",
		BaseURL:      "https://redbox.com/free-live-tv-movies",
		Description:  "Redbox free streaming",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, false, true),
	}},
	{"stirr", models.PlatformDescriptor{
		Name:         "Stirr",
		BaseURL:      "https://stirr.com",
		Description:  "Sinclair's free streaming platform",
		ContentTypes: bothTypes,
		CastSupport:  cast(false, false, true),
	}},
	{"popcornflix", models.PlatformDescriptor{
		Name:         "Popcornflix",
		BaseURL:      "https://popcornflix.com",
		Description:  "Free movies and web series",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"revtv", models.PlatformDescriptor{
		Name:         "Rev TV",
		BaseURL:      "https://rev.tv",
		Description:  "Free streaming with ads",
		ContentTypes: bothTypes,
		CastSupport:  cast(false, false, true),
	}},
	{"theitembiz", models.PlatformDescriptor{
		Name:         "The IT Crowd",
		BaseURL:      "https://theitcrowd.com",
		Description:  "Tech and comedy content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(false, false, false),
	}},
	{"newsy", models.PlatformDescriptor{
		Name:         "Newsy",
		BaseURL:      "https://newsy.com",
		Description:  "Free news and documentaries",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, false, false),
	}},
	{"haystack", models.PlatformDescriptor{
		Name:         "Haystack News",
		BaseURL:      "https://haystack.tv",
		Description:  "Local news and content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"localish", models.PlatformDescriptor{
		Name:         "Localish",
		BaseURL:      "https://localish.com",
		Description:  "ABC's local lifestyle content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"accuweather", models.PlatformDescriptor{
		Name:         "AccuWeather",
		BaseURL:      "https://accuweather.com/tv",
		Description:  "Weather and lifestyle content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, false, false),
	}},
	{"gametv", models.PlatformDescriptor{
		Name:         "Game TV",
		BaseURL:      "https://gametv.com",
		Description:  "Gaming and esports content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(false, false, true),
	}},
	{"kidoodle", models.PlatformDescriptor{
		Name:         "Kidoodle TV",
		BaseURL:      "https://kidoodle.tv",
		Description:  "Safe kids content",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"vevo", models.PlatformDescriptor{
		Name:         "Vevo",
		BaseURL:      "https://vevo.com",
		Description:  "Music videos and concerts",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, true, true),
	}},
	{"retrocrush", models.PlatformDescriptor{
		Name:         "RetroCrush",
		BaseURL:      "https://retrocrush.tv",
		Description:  "Classic anime and cartoons",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, false, false),
	}},
	{"dovechannel", models.PlatformDescriptor{
		Name:         "Dove Channel",
		BaseURL:      "https://dovechannel.com/free",
		Description:  "Family-friendly movies",
		ContentTypes: movieOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"kocowa", models.PlatformDescriptor{
		Name:         "Kocowa TV",
		BaseURL:      "https://kocowa.com/free",
		Description:  "Korean content with ads",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, false, false),
	}},
	{"asiantv", models.PlatformDescriptor{
		Name:         "Asian Crush",
		BaseURL:      "https://asiancrush.com",
		Description:  "Asian movies and shows",
		ContentTypes: bothTypes,
		CastSupport:  cast(true, true, false),
	}},
	{"screambox", models.PlatformDescriptor{
		Name:         "Screambox",
		BaseURL:      "https://screambox.com/free",
		Description:  "Free horror content",
		ContentTypes: movieOnly,
		CastSupport:  cast(false, false, true),
	}},
	{"docurama", models.PlatformDescriptor{
		Name:         "Docurama",
		BaseURL:      "https://docurama.com/free",
		Description:  "Documentary films",
		ContentTypes: movieOnly,
		CastSupport:  cast(true, true, false),
	}},
	{"stadium", models.PlatformDescriptor{
		Name:         "Stadium",
		BaseURL:      "https://watchstadium.com",
		Description:  "Free sports programming",
		ContentTypes: seriesOnly,
		CastSupport:  cast(true, false, true),
	}},
	{"comedydynamics", models.PlatformDescriptor{
		Name:         "Comedy Dynamics",
		BaseURL:      "https://comedydynamics.com/free",
		Description:  "Stand-up and comedy specials",
		ContentTypes: bothTypes,
		CastSupport:  cast(false, true, false),
	}},
}
