// Package document gives read access to the text of a fetched web page,
// optionally split into Tamil and non-Tamil runs.
//
// A Document is built by one fetch and one parse and is immutable
// afterwards. Text and ByTag never touch the network.
//
// Filters:
//   - Raw: fragments as they appear in the page
//   - TamilOnly: maximal Tamil runs per fragment
//   - NonTamilOnly: maximal non-Tamil runs per fragment
//
// TamilOnly and NonTamilOnly are mutually exclusive; combining them
// returns ErrInvalidArgument.
//
// An empty Result does not tell "the page has no Tamil text" apart from
// "the site served an empty or blocking page instead of its content".
// The debug log line written for each query carries the document size to
// help tell the two apart.
//
// Example Usage:
//
//	doc, err := document.Open(ctx, client, "https://www.projectmadurai.org/pm_etexts/utf8/pmuni0002.html")
//	res, err := doc.ByTag("h1", document.TamilOnly)
package document
