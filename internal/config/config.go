package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	ViewsDir string
	LogLevel string

	GoogleAPIKey   string
	SearchEngineID string
	SearchAPIURL   string

	NewsProvider string // "newsapi" or "rss"
	NewsAPIKey   string
	NewsAPIURL   string
	NewsRSSURL   string

	SuggestAPIURL string

	UpstreamTimeout     time.Duration
	FeedRefreshInterval time.Duration

	LexiconFile string
	CORSOrigins string
}

const (
	defaultSearchAPIURL  = "https://www.googleapis.com/customsearch/v1"
	defaultNewsAPIURL    = "https://newsapi.org/v2/everything"
	defaultNewsRSSURL    = "https://news.google.com/rss/search"
	defaultSuggestAPIURL = "http://suggestqueries.google.com/complete/search"
)

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getduration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Load reads .env when present and then the process environment.
// A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{
		Port:     getenv("PORT", "3000"),
		ViewsDir: getenv("VIEWS_DIR", "./static"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		GoogleAPIKey:   getenv("GOOGLE_API_KEY", ""),
		SearchEngineID: getenv("SEARCH_ENGINE_ID", ""),
		SearchAPIURL:   getenv("SEARCH_API_URL", defaultSearchAPIURL),

		NewsAPIKey: getenv("NEWS_API_KEY", ""),
		NewsAPIURL: getenv("NEWS_API_URL", defaultNewsAPIURL),
		NewsRSSURL: getenv("NEWS_RSS_URL", defaultNewsRSSURL),

		SuggestAPIURL: getenv("SUGGEST_API_URL", defaultSuggestAPIURL),

		UpstreamTimeout:     getduration("UPSTREAM_TIMEOUT", 15*time.Second),
		FeedRefreshInterval: getduration("FEED_REFRESH_INTERVAL", 2*time.Minute),

		LexiconFile: getenv("LEXICON_FILE", ""),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),
	}

	cfg.NewsProvider = strings.ToLower(getenv("NEWS_PROVIDER", ""))
	if cfg.NewsProvider != "newsapi" && cfg.NewsProvider != "rss" {
		if cfg.NewsAPIKey != "" {
			cfg.NewsProvider = "newsapi"
		} else {
			cfg.NewsProvider = "rss"
		}
	}
	return cfg
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
