package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

const (
	// MaxHTMLSize limits HTML input to 10MB to prevent memory exhaustion
	MaxHTMLSize = 10 * 1024 * 1024
)

// ErrHTMLTooLarge is returned when a page exceeds MaxHTMLSize
var ErrHTMLTooLarge = errors.New("html exceeds maximum size")

// ValidateHTML checks HTML size. Empty input is valid and parses to an
// empty document.
func ValidateHTML(data []byte) error {
	if len(data) > MaxHTMLSize {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrHTMLTooLarge, len(data), MaxHTMLSize)
	}
	return nil
}

// DetectCharset detects and returns charset from HTML bytes
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadHTML parses HTML bytes into a goquery document.
//
// A charset declared in contentType wins. Otherwise valid UTF-8 is parsed
// as is, and anything else goes through chardet before decoding.
func LoadHTML(data []byte, contentType string) (*goquery.Document, error) {
	if err := ValidateHTML(data); err != nil {
		return nil, err
	}

	if !hasCharset(contentType) {
		if utf8.Valid(data) {
			return goquery.NewDocumentFromReader(bytes.NewReader(data))
		}
		contentType = "text/html; charset=" + DetectCharset(data)
	}

	utf8Reader, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}

func hasCharset(contentType string) bool {
	if contentType == "" {
		return false
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return params["charset"] != ""
}
