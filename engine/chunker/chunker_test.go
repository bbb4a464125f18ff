package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByWords(t *testing.T) {
	t.Run("Should grow chunks to finish sentences under the soft limit", func(t *testing.T) {
		c := New()
		chunks := c.SplitByWords("One two three four five. Six seven.", 3)
		assert.Equal(t, []string{"One two three four five.", "Six seven."}, chunks)
	})

	t.Run("Should not cut after abbreviations on the fallback path", func(t *testing.T) {
		c := New(WithLocale("ka"))
		chunks := c.SplitByWords("Dr. Smith went home. He left.", 3, WithStrategy(HardLimit))
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.NotEqual(t, "Dr.", chunk)
		}
		assert.Equal(t, []string{"Dr. Smith went", "home. He left."}, chunks)
	})

	t.Run("Should slice fixed-size groups when boundaries are disabled", func(t *testing.T) {
		c := New()
		chunks := c.SplitByWords("a b c d e f g", 3, WithSentenceBoundaries(false))
		assert.Equal(t, []string{"a b c", "d e f", "g"}, chunks)
	})

	t.Run("Should prefer maxChunkSize over the per-call size", func(t *testing.T) {
		c := New()
		chunks := c.SplitByWords("a b c d e f", 2, WithSentenceBoundaries(false), WithMaxChunkSize(3))
		assert.Equal(t, []string{"a b c", "d e f"}, chunks)
	})

	t.Run("Should silently drop chunks below the minimum size", func(t *testing.T) {
		c := New()
		chunks := c.SplitByWords("a b c d e f g", 3, WithSentenceBoundaries(false), WithMinChunkSize(2))
		assert.Equal(t, []string{"a b c", "d e f"}, chunks)
	})

	t.Run("Should collapse whitespace when preservation is off", func(t *testing.T) {
		c := New()
		chunks := c.SplitByWords("  spaced \t out\n text  ", 10, WithPreserveWhitespace(false))
		assert.Equal(t, []string{"spaced out text"}, chunks)
	})

	t.Run("Should return nil for empty or invalid input", func(t *testing.T) {
		c := New()
		assert.Nil(t, c.SplitByWords("", 10))
		assert.Nil(t, c.SplitByWords("   \n ", 10))
		assert.Nil(t, c.SplitByWords("some text", 0))
		assert.Nil(t, c.SplitByWords("some text", -1))
	})

	t.Run("Should terminate on pathological input", func(t *testing.T) {
		c := New()
		text := strings.Repeat("word ", 500)
		chunks := c.SplitByWords(text, 1, WithStrategy(HardLimit))
		assert.Len(t, chunks, 500)
	})
}

func TestSplitByCharacters(t *testing.T) {
	t.Run("Should never exceed the cap under the hard limit", func(t *testing.T) {
		c := New()
		text := "Short one. A much longer second sentence here. Tail."
		chunks := c.SplitByCharacters(text, 10, WithStrategy(HardLimit))
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len([]rune(chunk)), 10)
		}
	})

	t.Run("Should end soft-limit chunks exactly at the next boundary", func(t *testing.T) {
		c := New()
		chunks := c.SplitByCharacters("First one. Second two. Third three.", 12)
		assert.Equal(t, []string{"First one. Second two.", "Third three."}, chunks)
	})

	t.Run("Should produce exact fixed-size chunks when boundaries are disabled", func(t *testing.T) {
		c := New()
		chunks := c.SplitByCharacters("abcdefgh", 3, WithSentenceBoundaries(false))
		assert.Equal(t, []string{"abc", "def", "gh"}, chunks)
	})

	t.Run("Should not start chunks with whitespace", func(t *testing.T) {
		c := New()
		chunks := c.SplitByCharacters("Alpha beta. Gamma delta. Epsilon zeta.", 12)
		for _, chunk := range chunks {
			assert.Equal(t, strings.TrimLeft(chunk, " "), chunk)
		}
	})

	t.Run("Should handle multi-byte runes by rune count", func(t *testing.T) {
		c := New()
		chunks := c.SplitByCharacters("日本語のテキスト", 4, WithSentenceBoundaries(false))
		assert.Equal(t, []string{"日本語の", "テキスト"}, chunks)
	})

	t.Run("Should return nil for empty input", func(t *testing.T) {
		c := New()
		assert.Nil(t, c.SplitByCharacters("", 10))
		assert.Nil(t, c.SplitByCharacters("text", 0))
	})
}

func TestSplitByLines(t *testing.T) {
	t.Run("Should group lines and flush the remainder", func(t *testing.T) {
		c := New()
		chunks := c.SplitByLines("a\nb\nc\nd\ne", 2)
		assert.Equal(t, []string{"a\nb", "c\nd", "e"}, chunks)
	})

	t.Run("Should drop blank lines by default", func(t *testing.T) {
		c := New()
		chunks := c.SplitByLines("a\n\n\nb\nc", 2)
		assert.Equal(t, []string{"a\nb", "c"}, chunks)
	})

	t.Run("Should keep blank lines when preserved", func(t *testing.T) {
		c := New()
		chunks := c.SplitByLines("a\n\nb", 2, WithPreserveEmptyLines(true))
		assert.Equal(t, []string{"a\n", "b"}, chunks)
	})

	t.Run("Should handle CRLF line endings", func(t *testing.T) {
		c := New()
		chunks := c.SplitByLines("a\r\nb\r\nc", 2)
		assert.Equal(t, []string{"a\nb", "c"}, chunks)
	})

	t.Run("Should return nil for blank-only input", func(t *testing.T) {
		c := New()
		assert.Nil(t, c.SplitByLines("   \n\n", 5))
		assert.Nil(t, c.SplitByLines("", 5))
		assert.Nil(t, c.SplitByLines("a\nb", 0))
	})
}

func TestChunkingStats(t *testing.T) {
	t.Run("Should aggregate per-chunk word counts", func(t *testing.T) {
		c := New()
		stats := c.ChunkingStats("One two three four five. Six seven eight.", 3)
		assert.Equal(t, Stats{
			ChunkCount:       2,
			AvgWordsPerChunk: 4,
			MinWords:         3,
			MaxWords:         5,
			TotalWords:       8,
		}, stats)
	})

	t.Run("Should return zero stats for empty input", func(t *testing.T) {
		c := New()
		assert.Equal(t, Stats{}, c.ChunkingStats("", 10))
	})
}

func TestNew(t *testing.T) {
	t.Run("Should default the locale", func(t *testing.T) {
		assert.Equal(t, "en", New().Locale())
		assert.Equal(t, "tr", New(WithLocale("tr")).Locale())
		assert.Equal(t, "en", New(WithLocale("")).Locale())
	})

	t.Run("Should be safe for concurrent reuse", func(t *testing.T) {
		c := New()
		text := "Alpha beta. Gamma delta. Epsilon zeta. Eta theta."
		want := c.SplitByWords(text, 4)
		done := make(chan []string, 8)
		for range 8 {
			go func() { done <- c.SplitByWords(text, 4) }()
		}
		for range 8 {
			assert.Equal(t, want, <-done)
		}
	})
}
