// Package config provides 12-factor configuration for the tamilscraper
// command.
//
// Configuration is loaded from environment variables with sensible
// defaults. An optional .env file is read first; variables already present
// in the environment take precedence over it. Library packages never read
// the environment themselves.
//
// Configuration Sections:
//   - Target: page to scrape
//   - Fetch: HTTP timeout, User-Agent, body size limit
//   - Scraper: optional sanitization before parsing
//   - Output: markdown or JSON output, metrics dump
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg, err := config.Load()
//	client := fetch.NewClient(cfg.Fetch.Client(), logger)
//
// Environment Variables:
//   - TAMIL_URL
//   - FETCH_TIMEOUT, FETCH_USER_AGENT, FETCH_MAX_BODY_BYTES
//   - SCRAPER_SANITIZE
//   - OUTPUT_FORMAT, METRICS_DUMP
//   - LOG_LEVEL, LOG_DEV
package config
