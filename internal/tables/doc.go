// Package tables loads HTML tables from a page and keeps the ones that
// contain Tamil text.
//
// A table is kept or dropped as a whole: if any cell in any column holds a
// Tamil rune the table is selected, and its remaining columns are not
// scanned. Column names are never part of the test.
//
// Two entry points exist:
//   - Select reports a refused fetch as a Status (Denied or NotFound)
//   - SelectTamilTables logs a refused fetch and returns an empty slice,
//     so "no Tamil tables" and "site refused the request" look the same to
//     the caller
//
// Example Usage:
//
//	selector := tables.NewSelector(tables.NewLoader(client), logger, nil)
//	found, err := selector.SelectTamilTables(ctx, url)
package tables
