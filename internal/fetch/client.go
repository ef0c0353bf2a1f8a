package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/TamilScraper/internal/monitoring"
)

// Fetcher retrieves the raw bytes of a page
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Page, error)
}

// Page is a successfully fetched response body
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Config defines client behavior
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
}

// DefaultConfig returns the client defaults
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		UserAgent:    "TamilScraper/1.0",
		MaxBodyBytes: 10 * 1024 * 1024,
	}
}

// Client wraps resty for single-shot page fetches
type Client struct {
	resty   *resty.Client
	cfg     Config
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewClient creates an HTTP client. A nil logger disables logging.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaults.MaxBodyBytes
	}

	// Pooled transport only; retries stay off
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetResponseBodyLimit(int(cfg.MaxBodyBytes)).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8").
		SetTransport(retryClient.HTTPClient.Transport)

	return &Client{
		resty:  restyClient,
		cfg:    cfg,
		logger: logger.Named("fetch"),
	}
}

// WithMetrics attaches a metrics collector and returns the client
func (c *Client) WithMetrics(m *monitoring.Metrics) *Client {
	c.metrics = m
	return c
}

// Config returns the effective configuration
func (c *Client) Config() Config {
	return c.cfg
}

// Fetch performs one GET request. Non-2xx answers and transport failures
// are returned as *Error; there is no retry.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.resty.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		c.metrics.ObserveFetch(monitoring.OutcomeTransportError)
		c.logger.Debug("fetch failed", zap.String("url", rawURL), zap.Error(err))
		if errors.Is(err, resty.ErrResponseBodyTooLarge) {
			err = fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, c.cfg.MaxBodyBytes)
		}
		return nil, &Error{URL: rawURL, Err: err}
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.metrics.ObserveFetch(monitoring.OutcomeStatusError)
		c.logger.Debug("fetch rejected",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", time.Since(start)))
		return nil, &Error{
			URL:        rawURL,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	body := resp.Body()
	c.metrics.ObserveFetch(monitoring.OutcomeOK)
	c.logger.Debug("fetched",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)))

	return &Page{
		URL:         rawURL,
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        body,
	}, nil
}

// ValidateURL accepts absolute http and https URLs only
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
