package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

var tagNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// ValidTagName reports whether name is a plain element name usable as a selector
func ValidTagName(name string) bool {
	return tagNamePattern.MatchString(name)
}

// TextNodes returns every text and comment string of the document in
// document order. Data is returned unmodified, whitespace included.
func TextNodes(doc *goquery.Document) ([]string, error) {
	if doc == nil || len(doc.Nodes) == 0 {
		return []string{}, nil
	}

	nodes, err := htmlquery.QueryAll(doc.Nodes[0], "descendant::node()")
	if err != nil {
		return nil, fmt.Errorf("text node query failed: %w", err)
	}

	texts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if node.Type == html.TextNode || node.Type == html.CommentNode {
			texts = append(texts, node.Data)
		}
	}
	return texts, nil
}

// ElementTexts returns the text of every element with the given tag name,
// one entry per element in document order. Each descendant string is
// trimmed and the non-empty pieces are joined without a separator.
func ElementTexts(doc *goquery.Document, tag string) ([]string, error) {
	if !ValidTagName(tag) {
		return nil, fmt.Errorf("invalid tag name %q", tag)
	}

	texts := []string{}
	var err error
	doc.Find(strings.ToLower(tag)).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var text string
		text, err = strippedText(s.Nodes[0])
		if err != nil {
			return false
		}
		texts = append(texts, text)
		return true
	})
	if err != nil {
		return nil, err
	}
	return texts, nil
}

// strippedText joins the trimmed text nodes under n. Script and style
// bodies count only when n is that script or style element.
func strippedText(n *html.Node) (string, error) {
	nodes, err := htmlquery.QueryAll(n, "descendant::text()")
	if err != nil {
		return "", fmt.Errorf("element text query failed: %w", err)
	}

	var buf strings.Builder
	for _, node := range nodes {
		if parent := node.Parent; parent != n && parent != nil && rawTextElement(parent) {
			continue
		}
		buf.WriteString(strings.TrimSpace(node.Data))
	}
	return buf.String(), nil
}

func rawTextElement(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style")
}

// ExtractText safely extracts trimmed text from node
func ExtractText(n *html.Node) string {
	var buf strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return strings.TrimSpace(buf.String())
}

// NormalizeWhitespace collapses multiple spaces into one
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
