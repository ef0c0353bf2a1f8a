package tables

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/scraper"
)

// Loader fetches a page and parses all of its tables
type Loader struct {
	fetcher fetch.Fetcher
}

// NewLoader creates a loader on top of f
func NewLoader(f fetch.Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// Load fetches url and returns its tables in document order. Fetch
// failures are returned unchanged.
func (l *Loader) Load(ctx context.Context, url string) ([]Table, error) {
	loaded, _, err := l.load(ctx, url)
	return loaded, err
}

// load also reports the HTTP status the page was served with
func (l *Loader) load(ctx context.Context, url string) ([]Table, int, error) {
	page, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, 0, err
	}
	loaded, err := ParseHTML(page.Body, page.ContentType)
	if err != nil {
		return nil, page.StatusCode, err
	}
	return loaded, page.StatusCode, nil
}

// ParseHTML parses already fetched HTML into tables
func ParseHTML(body []byte, contentType string) ([]Table, error) {
	doc, err := scraper.LoadHTML(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	return Parse(doc), nil
}
