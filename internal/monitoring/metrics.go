package monitoring

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Fetch outcomes
const (
	OutcomeOK             = "ok"
	OutcomeStatusError    = "status_error"
	OutcomeTransportError = "transport_error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	FetchesTotal       *prometheus.CounterVec
	DocumentsParsed    prometheus.Counter
	FragmentsExtracted *prometheus.CounterVec
	TablesScanned      prometheus.Counter
	TablesSelected     prometheus.Counter
	TableFetchDenied   prometheus.Counter
}

// NewMetrics creates a metrics collector registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tamilscraper_fetches_total",
				Help: "Total number of page fetches by outcome",
			},
			[]string{"outcome"},
		),
		DocumentsParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "tamilscraper_documents_parsed_total",
			Help: "Total number of HTML documents parsed",
		}),
		FragmentsExtracted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tamilscraper_fragments_extracted_total",
				Help: "Total number of text fragments selected by filter",
			},
			[]string{"filter"},
		),
		TablesScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "tamilscraper_tables_scanned_total",
			Help: "Total number of HTML tables scanned for Tamil content",
		}),
		TablesSelected: factory.NewCounter(prometheus.CounterOpts{
			Name: "tamilscraper_tables_selected_total",
			Help: "Total number of HTML tables containing Tamil content",
		}),
		TableFetchDenied: factory.NewCounter(prometheus.CounterOpts{
			Name: "tamilscraper_table_fetch_denied_total",
			Help: "Total number of table fetches refused by the remote site",
		}),
	}
}

// ObserveFetch records a fetch outcome
func (m *Metrics) ObserveFetch(outcome string) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(outcome).Inc()
}

// ObserveDocument records a parsed document
func (m *Metrics) ObserveDocument() {
	if m == nil {
		return
	}
	m.DocumentsParsed.Inc()
}

// ObserveFragments records fragments selected under a filter
func (m *Metrics) ObserveFragments(filter string, n int) {
	if m == nil {
		return
	}
	m.FragmentsExtracted.WithLabelValues(filter).Add(float64(n))
}

// ObserveTables records a table scan
func (m *Metrics) ObserveTables(scanned, selected int) {
	if m == nil {
		return
	}
	m.TablesScanned.Add(float64(scanned))
	m.TablesSelected.Add(float64(selected))
}

// ObserveTableDenied records a refused table fetch
func (m *Metrics) ObserveTableDenied() {
	if m == nil {
		return
	}
	m.TableFetchDenied.Inc()
}

// WriteText dumps every metric of g in the text exposition format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
