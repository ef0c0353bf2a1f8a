package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/logging"
)

// DefaultURL is the page the command line tool scrapes when none is configured
const DefaultURL = "https://www.projectmadurai.org/pm_etexts/utf8/pmuni0002.html"

// Output formats
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Config holds all application configuration.
type Config struct {
	Target  TargetConfig
	Fetch   FetchConfig
	Scraper ScraperConfig
	Output  OutputConfig
	Logging LogConfig
}

// TargetConfig holds the page to scrape.
type TargetConfig struct {
	URL string `envconfig:"TAMIL_URL" default:"https://www.projectmadurai.org/pm_etexts/utf8/pmuni0002.html"`
}

// FetchConfig holds HTTP client configuration.
type FetchConfig struct {
	Timeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	UserAgent    string        `envconfig:"FETCH_USER_AGENT" default:"TamilScraper/1.0"`
	MaxBodyBytes int64         `envconfig:"FETCH_MAX_BODY_BYTES" default:"10485760"`
}

// ScraperConfig holds parsing configuration.
type ScraperConfig struct {
	Sanitize bool `envconfig:"SCRAPER_SANITIZE" default:"false"`
}

// OutputConfig holds command line output configuration.
type OutputConfig struct {
	Format      string `envconfig:"OUTPUT_FORMAT" default:"markdown"`
	MetricsDump bool   `envconfig:"METRICS_DUMP" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables, after reading an
// optional .env file in the working directory.
func Load() (*Config, error) {
	return LoadWithEnvFile(".env")
}

// LoadWithEnvFile loads the given dotenv files, then the environment.
// Variables already set in the environment win over file values; missing
// files are ignored.
func LoadWithEnvFile(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	client := fetch.DefaultConfig()
	return &Config{
		Target: TargetConfig{
			URL: DefaultURL,
		},
		Fetch: FetchConfig{
			Timeout:      client.Timeout,
			UserAgent:    client.UserAgent,
			MaxBodyBytes: client.MaxBodyBytes,
		},
		Scraper: ScraperConfig{
			Sanitize: false,
		},
		Output: OutputConfig{
			Format:      FormatMarkdown,
			MetricsDump: false,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Validate checks values envconfig cannot check by type.
func (c *Config) Validate() error {
	if err := fetch.ValidateURL(c.Target.URL); err != nil {
		return fmt.Errorf("TAMIL_URL: %w", err)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("FETCH_MAX_BODY_BYTES must be positive, got %d", c.Fetch.MaxBodyBytes)
	}
	switch c.Output.Format {
	case FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("OUTPUT_FORMAT must be %q or %q, got %q", FormatMarkdown, FormatJSON, c.Output.Format)
	}
	return nil
}

// Client returns the fetch client configuration.
func (f FetchConfig) Client() fetch.Config {
	return fetch.Config{
		Timeout:      f.Timeout,
		UserAgent:    f.UserAgent,
		MaxBodyBytes: f.MaxBodyBytes,
	}
}

// Settings maps the logging section onto the logger configuration
func (l LogConfig) Settings() logging.Config {
	settings := logging.DefaultConfig()
	settings.Level = l.Level
	settings.Development = l.Development
	return settings
}
