package config

import (
	"os"
	"strconv"
)

// Config carries all environment-derived settings. A missing TMDB key is not
// an error: the catalog gateway then serves its fallback dataset permanently.
type Config struct {
	TMDBAPIKey     string
	FrontendOrigin string
	Port           string
	CacheDir       string
	CacheTTLHours  int
	LogFile        string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		TMDBAPIKey:     os.Getenv("TMDB_API_KEY"),
		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
		Port:           envOr("PORT", "8001"),
		CacheDir:       envOr("CACHE_DIR", "./cache"),
		CacheTTLHours:  envIntOr("CACHE_TTL_HOURS", 6),
		LogFile:        os.Getenv("LOG_FILE"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
