// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Logs are written to stderr by default; stdout is left to the extracted
// text and tables.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Info("Selecting tables", zap.String("url", url))
//	logger.Warn("Table fetch refused", zap.Int("status", 403))
package logging
