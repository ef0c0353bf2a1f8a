package tables

import (
	"context"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/monitoring"
	"github.com/GriffinCanCode/TamilScraper/internal/tamil"
)

// Status tells why a selection holds the tables it does
type Status int

const (
	// StatusOK means the page was fetched and scanned
	StatusOK Status = iota
	// StatusDenied means the site answered the table fetch with an error status
	StatusDenied
	// StatusNotFound means the site answered 404 or 410
	StatusNotFound
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDenied:
		return "denied"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Selection is the outcome of a table selection
type Selection struct {
	URL        string
	Status     Status
	StatusCode int
	Scanned    int
	Tables     []Table
}

// Selector picks the tables of a page that contain Tamil text
type Selector struct {
	loader  *Loader
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewSelector creates a selector. Logger and metrics may be nil.
func NewSelector(loader *Loader, logger *zap.Logger, metrics *monitoring.Metrics) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		loader:  loader,
		logger:  logger.Named("tables"),
		metrics: metrics,
	}
}

// Select loads the tables of url and keeps those with Tamil content. A
// non-2xx answer is reported through Status with a nil error; transport
// failures are returned as errors.
func (s *Selector) Select(ctx context.Context, url string) (*Selection, error) {
	loaded, code, err := s.loader.load(ctx, url)
	if err != nil {
		if !fetch.IsStatus(err) {
			return nil, err
		}

		status := StatusDenied
		if fetch.IsNotFound(err) {
			status = StatusNotFound
		}
		s.metrics.ObserveTableDenied()
		return &Selection{
			URL:        url,
			Status:     status,
			StatusCode: fetch.StatusCode(err),
			Tables:     []Table{},
		}, nil
	}

	selected := SelectTamil(loaded)
	s.metrics.ObserveTables(len(loaded), len(selected))
	s.logger.Debug("tables scanned",
		zap.String("url", url),
		zap.Int("scanned", len(loaded)),
		zap.Int("selected", len(selected)))

	return &Selection{
		URL:        url,
		Status:     StatusOK,
		StatusCode: code,
		Scanned:    len(loaded),
		Tables:     selected,
	}, nil
}

// SelectTamilTables returns the tables of url that contain Tamil text.
//
// When the site refuses the request the refusal is logged and an empty
// slice is returned without error, the same value as a page without Tamil
// tables. Use Select to tell the two apart.
func (s *Selector) SelectTamilTables(ctx context.Context, url string) ([]Table, error) {
	sel, err := s.Select(ctx, url)
	if err != nil {
		return nil, err
	}

	switch {
	case sel.Status != StatusOK:
		s.logger.Warn("site is not allowing its tables to be fetched, try another site",
			zap.String("url", url),
			zap.Stringer("status", sel.Status),
			zap.Int("http_status", sel.StatusCode))
	case len(sel.Tables) == 0:
		s.logger.Info("no table with Tamil content",
			zap.String("url", url),
			zap.Int("scanned", sel.Scanned))
	}
	return sel.Tables, nil
}

// SelectTamil keeps, in order, the tables for which ContainsTamil holds
func SelectTamil(loaded []Table) []Table {
	out := []Table{}
	for _, t := range loaded {
		if ContainsTamil(t) {
			out = append(out, t)
		}
	}
	return out
}

// ContainsTamil reports whether any cell of t holds a Tamil rune. Columns
// are scanned in order and the scan stops at the first matching column.
func ContainsTamil(t Table) bool {
	for i := 0; i < t.Width(); i++ {
		for _, v := range t.Column(i) {
			if tamil.ContainsTamil(v) {
				return true
			}
		}
	}
	return false
}
