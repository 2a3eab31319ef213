// Package config assembles the pipeline configuration from three layers:
// built-in defaults, an optional YAML overlay file, and environment variable
// overrides. Later layers win.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/domain/lexicon"
	pkgconfig "signal-scout/pkg/config"
)

// Feed is one RSS feed polled during discovery.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config holds the full pipeline configuration.
type Config struct {
	// Feeds is the ordered RSS feed list polled during discovery.
	Feeds []Feed

	// KeywordCategories is the ordered category-to-keywords mapping the
	// matching lexicon is built from.
	KeywordCategories []lexicon.Category

	// CompanyFile is the path of the company-name CSV.
	// Default: "company_list.csv"
	CompanyFile string

	// OutputPath is where the match-record JSON array is written.
	// Default: "portal.json"
	OutputPath string

	// RecencyWindow bounds discovery to items published within this window.
	// Default: 168h (7 days)
	RecencyWindow time.Duration

	// MaxURLs caps how many discovered URLs are processed, for small debug
	// runs. 0 means no cap. Default: 0
	MaxURLs int

	// Workers is the number of concurrent document workers. Default: 8
	Workers int

	// FetchTimeout bounds each article fetch. Default: 15s
	FetchTimeout time.Duration

	// MaxBodySize caps each fetched response body in bytes. Default: 10MiB
	MaxBodySize int64

	// UserAgent overrides the fetcher's browser User-Agent when set.
	// Default: "" (keep the fetcher default)
	UserAgent string

	// NewsAPIKey enables NewsAPI discovery when non-empty. Default: unset
	NewsAPIKey string
}

// overlayFile is the YAML shape of the optional SCOUT_CONFIG file.
// Only fields present in the file override the built-in defaults; the feed
// list and keyword categories replace their defaults wholesale.
type overlayFile struct {
	Feeds             []Feed             `yaml:"feeds"`
	KeywordCategories []lexicon.Category `yaml:"keyword_categories"`
	CompanyFile       string             `yaml:"company_file"`
	OutputFile        string             `yaml:"output_file"`
}

// Load builds the pipeline configuration: built-in defaults, then the YAML
// overlay named by SCOUT_CONFIG (if set), then environment variable
// overrides. The result is validated before it is returned.
func Load() (*Config, error) {
	config := &Config{
		Feeds:             DefaultFeeds(),
		KeywordCategories: DefaultKeywordCategories(),
		CompanyFile:       "company_list.csv",
		OutputPath:        "portal.json",
		RecencyWindow:     7 * 24 * time.Hour,
		Workers:           8,
		FetchTimeout:      15 * time.Second,
		MaxBodySize:       10 << 20,
	}

	if path := os.Getenv("SCOUT_CONFIG"); path != "" {
		if err := config.applyOverlay(path); err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
	}
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyOverlay merges the YAML overlay file at path into the configuration.
func (c *Config) applyOverlay(path string) error {
	// #nosec G304 -- path is provided by trusted source (environment), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if len(overlay.Feeds) > 0 {
		c.Feeds = overlay.Feeds
	}
	if len(overlay.KeywordCategories) > 0 {
		c.KeywordCategories = overlay.KeywordCategories
	}
	if overlay.CompanyFile != "" {
		c.CompanyFile = overlay.CompanyFile
	}
	if overlay.OutputFile != "" {
		c.OutputPath = overlay.OutputFile
	}

	return nil
}

// applyEnv applies environment variable overrides on top of whatever the
// defaults and the overlay produced.
func (c *Config) applyEnv() {
	c.CompanyFile = pkgconfig.GetEnvString("COMPANY_FILE", c.CompanyFile)
	c.OutputPath = pkgconfig.GetEnvString("OUTPUT_FILE", c.OutputPath)
	c.NewsAPIKey = strings.TrimSpace(pkgconfig.GetEnvString("NEWSAPI_KEY", c.NewsAPIKey))
	c.RecencyWindow = pkgconfig.GetEnvDuration("RECENCY_WINDOW", c.RecencyWindow)
	c.MaxURLs = pkgconfig.GetEnvInt("MAX_URLS", c.MaxURLs)
	c.Workers = pkgconfig.GetEnvInt("PIPELINE_WORKERS", c.Workers)
	c.FetchTimeout = pkgconfig.GetEnvDuration("FETCH_TIMEOUT", c.FetchTimeout)
	c.MaxBodySize = int64(pkgconfig.GetEnvInt("MAX_BODY_SIZE", int(c.MaxBodySize)))
	c.UserAgent = pkgconfig.GetEnvString("FETCH_USER_AGENT", c.UserAgent)

	// FEED_URLS replaces the whole feed list; feed names default to the URL
	if urls := pkgconfig.GetEnvStringList("FEED_URLS", nil); len(urls) > 0 {
		feeds := make([]Feed, 0, len(urls))
		for _, u := range urls {
			feeds = append(feeds, Feed{Name: u, URL: u})
		}
		c.Feeds = feeds
	}
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 && c.NewsAPIKey == "" {
		return fmt.Errorf("at least one feed or a NEWSAPI_KEY is required")
	}

	for _, f := range c.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %q: name cannot be empty", f.URL)
		}
		if err := entity.ValidateURL(f.URL); err != nil {
			return fmt.Errorf("feed %s: %w", f.Name, err)
		}
	}

	if len(c.KeywordCategories) == 0 {
		return fmt.Errorf("at least one keyword category is required")
	}
	for _, cat := range c.KeywordCategories {
		if cat.Name == "" {
			return fmt.Errorf("keyword category name cannot be empty")
		}
	}

	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_FILE cannot be empty")
	}

	if err := pkgconfig.ValidateDurationRange(c.RecencyWindow, time.Hour, 30*24*time.Hour); err != nil {
		return fmt.Errorf("RECENCY_WINDOW: %w", err)
	}

	if c.MaxURLs < 0 {
		return fmt.Errorf("MAX_URLS cannot be negative")
	}

	if c.Workers < 1 || c.Workers > 64 {
		return fmt.Errorf("PIPELINE_WORKERS must be between 1 and 64")
	}

	if err := pkgconfig.ValidatePositiveDuration(c.FetchTimeout); err != nil {
		return fmt.Errorf("FETCH_TIMEOUT: %w", err)
	}

	if c.MaxBodySize <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE must be positive")
	}

	return nil
}

// NewsAPIEnabled reports whether NewsAPI discovery should run.
func (c *Config) NewsAPIEnabled() bool {
	return c.NewsAPIKey != ""
}
