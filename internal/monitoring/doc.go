// Package monitoring provides Prometheus metrics for scraping runs.
//
// Metrics are registered on a caller-supplied registry so that tests and
// the command line tool can each use their own. Every method is safe to
// call on a nil *Metrics, which turns collection off.
//
// Example Usage:
//
//	reg := prometheus.NewRegistry()
//	metrics := monitoring.NewMetrics(reg)
//	metrics.ObserveFetch(monitoring.OutcomeOK)
//	monitoring.WriteText(os.Stderr, reg)
package monitoring
