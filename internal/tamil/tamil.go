package tamil

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	// RangeLo is the first codepoint of the Tamil block (TAMIL SIGN ANUSVARA)
	RangeLo = 0x0B82

	// RangeHi is the last codepoint of the Tamil block (TAMIL NUMBER SIGN)
	RangeHi = 0x0BFA
)

// Range is the Tamil block as a unicode.RangeTable
var Range = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: RangeLo, Hi: RangeHi, Stride: 1}},
}

var (
	tamilRun    = regexp.MustCompile(`[\x{0B82}-\x{0BFA}]+`)
	nonTamilRun = regexp.MustCompile(`[^\x{0B82}-\x{0BFA}]+`)
)

// Run is a maximal substring whose runes are all Tamil or all non-Tamil
type Run struct {
	Text  string
	Tamil bool
}

// IsTamil reports whether r lies in the Tamil range
func IsTamil(r rune) bool {
	return unicode.Is(Range, r)
}

// ContainsTamil reports whether s has at least one Tamil rune
func ContainsTamil(s string) bool {
	return tamilRun.MatchString(s)
}

// ContainsNonTamil reports whether s has at least one rune outside the Tamil range
func ContainsNonTamil(s string) bool {
	return nonTamilRun.MatchString(s)
}

// Runs decomposes s into alternating maximal Tamil and non-Tamil runs,
// left to right. Invalid UTF-8 bytes are non-Tamil.
func Runs(s string) []Run {
	var runs []Run
	start := 0
	inTamil := false

	for i, r := range s {
		t := IsTamil(r)
		if i == 0 {
			inTamil = t
			continue
		}
		if t != inTamil {
			runs = append(runs, Run{Text: s[start:i], Tamil: inTamil})
			start = i
			inTamil = t
		}
	}
	if start < len(s) {
		runs = append(runs, Run{Text: s[start:], Tamil: inTamil})
	}
	return runs
}

// ExtractTamil returns, for each fragment, its maximal Tamil-only substrings.
// The result has one entry per fragment; an entry is empty, never nil,
// when the fragment holds no Tamil.
func ExtractTamil(fragments []string) [][]string {
	return extract(fragments, true)
}

// ExtractNonTamil returns, for each fragment, its maximal substrings that
// contain no Tamil rune.
func ExtractNonTamil(fragments []string) [][]string {
	return extract(fragments, false)
}

func extract(fragments []string, tamil bool) [][]string {
	out := make([][]string, 0, len(fragments))
	for _, fragment := range fragments {
		matched := []string{}
		for _, run := range Runs(fragment) {
			if run.Tamil == tamil {
				matched = append(matched, run.Text)
			}
		}
		out = append(out, matched)
	}
	return out
}

// Ratio returns the share of runes in s that are Tamil, 0 for an empty string
func Ratio(s string) float64 {
	total := utf8.RuneCountInString(s)
	if total == 0 {
		return 0
	}

	n := 0
	for _, r := range s {
		if IsTamil(r) {
			n++
		}
	}
	return float64(n) / float64(total)
}
