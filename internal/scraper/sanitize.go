package scraper

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips script, style and other unsafe markup while keeping the
// structural elements text extraction relies on.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with the UGC policy
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns the sanitized HTML bytes
func (s *Sanitizer) Sanitize(data []byte) []byte {
	return s.policy.SanitizeBytes(data)
}
