// Package scraper turns fetched HTML bytes into queryable documents.
//
// Built on specialized libraries:
//   - goquery: document tree and tag selection
//   - htmlquery: XPath text-node queries
//   - bluemonday: optional sanitization before parsing
//   - chardet: character encoding detection for non-UTF-8 pages
//
// Example Usage:
//
//	doc, err := scraper.LoadHTML(body, resp.Header().Get("Content-Type"))
//	nodes, err := scraper.TextNodes(doc)
package scraper
