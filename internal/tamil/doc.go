// Package tamil classifies text by membership in the Tamil Unicode block.
//
// The Tamil range is the fixed inclusive interval U+0B82..U+0BFA. A rune is
// Tamil if and only if it falls inside that interval; digits, punctuation,
// symbols and whitespace (including the ASCII ones commonly found between
// Tamil words) are always non-Tamil.
//
// Classification is purely codepoint based:
//   - no word segmentation
//   - no normalization
//   - combining marks count only by their own codepoint
//
// Example Usage:
//
//	tamil.ExtractTamil([]string{"abcஅஆஇxyz"})    // [["அஆஇ"]]
//	tamil.ExtractNonTamil([]string{"abcஅஆஇxyz"}) // [["abc", "xyz"]]
package tamil
