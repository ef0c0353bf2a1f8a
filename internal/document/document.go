package document

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/monitoring"
	"github.com/GriffinCanCode/TamilScraper/internal/scraper"
	"github.com/GriffinCanCode/TamilScraper/internal/shared/id"
	"github.com/GriffinCanCode/TamilScraper/internal/tamil"
)

// Document is a parsed web page
type Document struct {
	id      id.DocumentID
	url     string
	size    int
	doc     *goquery.Document
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

type options struct {
	sanitize bool
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

// Option configures document construction
type Option func(*options)

// WithSanitize runs the HTML through the sanitizer before parsing, which
// drops script and style payloads from the text node set
func WithSanitize(enabled bool) Option {
	return func(o *options) { o.sanitize = enabled }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics sets the metrics collector
func WithMetrics(m *monitoring.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Open fetches url once and parses it. Fetch failures are returned
// unchanged; there is no retry.
func Open(ctx context.Context, f fetch.Fetcher, url string, opts ...Option) (*Document, error) {
	page, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return FromHTML(url, page.Body, page.ContentType, opts...)
}

// FromHTML parses already fetched HTML
func FromHTML(url string, body []byte, contentType string, opts ...Option) (*Document, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	if o.sanitize {
		body = scraper.NewSanitizer().Sanitize(body)
	}

	doc, err := scraper.LoadHTML(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	d := &Document{
		id:      id.NewDocumentID(),
		url:     url,
		size:    len(body),
		doc:     doc,
		logger:  o.logger.Named("document"),
		metrics: o.metrics,
	}
	d.metrics.ObserveDocument()
	d.logger.Debug("document parsed",
		zap.Stringer("doc", d.id),
		zap.String("url", url),
		zap.Int("bytes", d.size),
		zap.Bool("sanitized", o.sanitize))

	return d, nil
}

// ID returns the document identifier used in log lines
func (d *Document) ID() id.DocumentID {
	return d.id
}

// URL returns the address the document was fetched from
func (d *Document) URL() string {
	return d.url
}

// Text scans every text and comment string of the page.
//
// Raw and TamilOnly select nodes holding at least one Tamil rune; Raw
// returns them untouched. NonTamilOnly selects the broader set of nodes
// holding at least one non-Tamil rune, whitespace-only nodes included.
func (d *Document) Text(filter Filter) (Result, error) {
	if err := filter.Validate(); err != nil {
		return Result{}, err
	}

	nodes, err := scraper.TextNodes(d.doc)
	if err != nil {
		return Result{}, err
	}

	keep := tamil.ContainsTamil
	if filter == NonTamilOnly {
		keep = tamil.ContainsNonTamil
	}

	fragments := []string{}
	for _, text := range nodes {
		if keep(text) {
			fragments = append(fragments, text)
		}
	}

	return d.classify("text", filter, fragments), nil
}

// ByTag returns the trimmed text of every element named tag, in document
// order. Raw returns every element's text, Tamil or not.
func (d *Document) ByTag(tag string, filter Filter) (Result, error) {
	if err := filter.Validate(); err != nil {
		return Result{}, err
	}
	if !scraper.ValidTagName(tag) {
		return Result{}, fmt.Errorf("%w: tag name %q", ErrInvalidArgument, tag)
	}

	fragments, err := scraper.ElementTexts(d.doc, tag)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return d.classify(tag, filter, fragments), nil
}

func (d *Document) classify(query string, filter Filter, fragments []string) Result {
	var runs [][]string
	switch filter {
	case TamilOnly:
		runs = tamil.ExtractTamil(fragments)
	case NonTamilOnly:
		runs = tamil.ExtractNonTamil(fragments)
	default:
		runs = make([][]string, 0, len(fragments))
		for _, fragment := range fragments {
			runs = append(runs, []string{fragment})
		}
	}

	d.metrics.ObserveFragments(filter.String(), len(fragments))
	if ce := d.logger.Check(zap.DebugLevel, "fragments selected"); ce != nil {
		ce.Write(
			zap.Stringer("doc", d.id),
			zap.String("query", query),
			zap.Stringer("filter", filter),
			zap.Int("fragments", len(fragments)),
			zap.Int("bytes", d.size),
			zap.Float64("tamil_ratio", ratio(fragments)))
	}

	return Result{Filter: filter, Fragments: fragments, Runs: runs}
}

func ratio(fragments []string) float64 {
	var total float64
	for _, f := range fragments {
		total += tamil.Ratio(f)
	}
	if len(fragments) == 0 {
		return 0
	}
	return total / float64(len(fragments))
}
