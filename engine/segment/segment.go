// Package segment detects sentence boundaries in plain text.
//
// Detection runs through a locale-aware segmentation Provider when one is
// available for the requested locale, and falls back to punctuation scanning
// with an abbreviation exclusion list otherwise. All offsets are rune
// offsets, not byte offsets.
package segment

// Span is a sentence-granularity slice of the input text, rune-indexed.
type Span struct {
	Start int
	Len   int
}

// Provider segments text into sentence spans. Implementations must return
// spans in ascending order covering the input without overlap.
type Provider interface {
	Segment(text string) []Span
}
