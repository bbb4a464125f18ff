// Package chunker splits text into bounded chunks along sentence
// boundaries. It offers three modes (by word count, by character count, by
// line count) and two boundary policies: SoftLimit finishes the current
// sentence even when that overflows the target, HardLimit never exceeds it.
//
// For scripts without inter-word whitespace (Chinese, Japanese, Thai) the
// word mode is of undefined quality; character splitting with a supported
// locale is the recommended mode there.
package chunker

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/compozy/textchunk/engine/segment"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	lineBreak     = regexp.MustCompile(`\r?\n`)
)

// TextChunker is the chunking facade. Every split call is a pure,
// synchronous pass over its input; the only instance state is the memoized
// segmentation-provider lookup inside the detector, so a single chunker can
// be shared across goroutines.
type TextChunker struct {
	locale   string
	provider segment.Provider
	detector *segment.Detector
}

// Option configures a TextChunker at construction.
type Option func(*TextChunker)

// WithLocale sets the BCP-47 locale used for sentence segmentation.
func WithLocale(locale string) Option {
	return func(c *TextChunker) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithProvider injects a segmentation provider, bypassing locale-based
// selection. Intended for tests.
func WithProvider(p segment.Provider) Option {
	return func(c *TextChunker) { c.provider = p }
}

// New builds a TextChunker. The segmentation provider for the locale is
// acquired lazily on first use and never re-created.
func New(opts ...Option) *TextChunker {
	c := &TextChunker{locale: DefaultLocale}
	for _, opt := range opts {
		opt(c)
	}
	if c.provider != nil {
		c.detector = segment.NewDetectorWithProvider(c.locale, c.provider)
	} else {
		c.detector = segment.NewDetector(c.locale)
	}
	return c
}

// Locale returns the configured locale.
func (c *TextChunker) Locale() string {
	return c.locale
}

// SplitByWords splits text into chunks of roughly wordsPerChunk words,
// preferring to cut at sentence boundaries. Invalid input (empty or blank
// text, non-positive size) yields no chunks and no error. Chunks with fewer
// words than the minimum size are silently dropped, not merged.
func (c *TextChunker) SplitByWords(text string, wordsPerChunk int, opts ...SplitOption) []string {
	o := applySplitOptions(opts)
	if wordsPerChunk <= 0 {
		return nil
	}
	normalized := normalizeWhitespace(text, o.preserveWhitespace)
	if normalized == "" {
		return nil
	}
	words := strings.Fields(normalized)
	var boundaries []int
	if o.respectBoundaries {
		// Boundaries are detected over the words re-joined with single
		// spaces so character offsets line up with word indices.
		joined := strings.Join(words, " ")
		boundaries = MapWordBoundaries(words, c.detector.FindBoundaries(joined))
	}
	limit := wordsPerChunk
	if o.maxChunkSize > 0 {
		limit = o.maxChunkSize
	}
	chunks := make([]string, 0, len(words)/limit+1)
	start := 0
	for start < len(words) {
		target := start + limit
		if target >= len(words) {
			if len(words)-start >= o.minChunkSize {
				chunks = append(chunks, strings.Join(words[start:], " "))
			}
			break
		}
		cut := target
		if o.respectBoundaries {
			cut = SelectBoundary(boundaries, start, target, o.strategy)
		}
		if cut <= start {
			cut = target
		}
		if cut > len(words) {
			cut = len(words)
		}
		if cut-start >= o.minChunkSize {
			chunks = append(chunks, strings.Join(words[start:cut], " "))
		}
		start = cut
	}
	return chunks
}

// SplitByCharacters splits text into chunks of roughly charsPerChunk
// characters (runes), preferring sentence boundaries. After each cut the
// whitespace run following the boundary is skipped so chunks never start
// with a space.
func (c *TextChunker) SplitByCharacters(text string, charsPerChunk int, opts ...SplitOption) []string {
	o := applySplitOptions(opts)
	if charsPerChunk <= 0 {
		return nil
	}
	normalized := normalizeWhitespace(text, o.preserveWhitespace)
	if normalized == "" {
		return nil
	}
	runes := []rune(normalized)
	var boundaries []int
	if o.respectBoundaries {
		boundaries = c.detector.FindBoundaries(normalized)
	}
	chunks := make([]string, 0, len(runes)/charsPerChunk+1)
	start := 0
	for start < len(runes) {
		target := start + charsPerChunk
		if target >= len(runes) {
			if len(runes)-start >= o.minChunkSize {
				chunks = append(chunks, string(runes[start:]))
			}
			break
		}
		cut := target
		if o.respectBoundaries {
			cut = SelectBoundary(boundaries, start, target, o.strategy)
		}
		if cut <= start {
			cut = target
		}
		if cut > len(runes) {
			cut = len(runes)
		}
		if cut-start >= o.minChunkSize {
			chunks = append(chunks, string(runes[start:cut]))
		}
		start = cut
		for start < len(runes) && unicode.IsSpace(runes[start]) {
			start++
		}
	}
	return chunks
}

// SplitByLines groups lines into chunks of linesPerChunk lines each, joined
// with "\n". Blank lines are dropped unless preserved via option; the final
// chunk flushes whatever remains regardless of count. No sentence logic
// applies.
func (c *TextChunker) SplitByLines(text string, linesPerChunk int, opts ...SplitOption) []string {
	o := applySplitOptions(opts)
	if linesPerChunk <= 0 || text == "" {
		return nil
	}
	lines := lineBreak.Split(text, -1)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if o.preserveEmptyLines || strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	chunks := make([]string, 0, len(kept)/linesPerChunk+1)
	for start := 0; start < len(kept); start += linesPerChunk {
		end := start + linesPerChunk
		if end > len(kept) {
			end = len(kept)
		}
		chunks = append(chunks, strings.Join(kept[start:end], "\n"))
	}
	return chunks
}

// normalizeWhitespace trims the ends of text; when preserve is false it also
// collapses internal whitespace runs to single spaces.
func normalizeWhitespace(text string, preserve bool) string {
	trimmed := strings.TrimSpace(text)
	if preserve {
		return trimmed
	}
	return whitespaceRun.ReplaceAllString(trimmed, " ")
}
