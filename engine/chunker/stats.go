package chunker

import (
	"math"
	"strings"
)

// Stats summarizes a word-mode chunking run.
type Stats struct {
	ChunkCount       int `json:"chunk_count"`
	AvgWordsPerChunk int `json:"avg_words_per_chunk"`
	MinWords         int `json:"min_words"`
	MaxWords         int `json:"max_words"`
	TotalWords       int `json:"total_words"`
}

// ChunkingStats runs SplitByWords with the given size and options and
// aggregates per-chunk word counts. Zero chunks produce a zero-value Stats.
// The average is rounded to the nearest integer.
func (c *TextChunker) ChunkingStats(text string, wordsPerChunk int, opts ...SplitOption) Stats {
	chunks := c.SplitByWords(text, wordsPerChunk, opts...)
	if len(chunks) == 0 {
		return Stats{}
	}
	stats := Stats{ChunkCount: len(chunks), MinWords: math.MaxInt}
	for _, chunk := range chunks {
		n := len(strings.Fields(chunk))
		stats.TotalWords += n
		if n < stats.MinWords {
			stats.MinWords = n
		}
		if n > stats.MaxWords {
			stats.MaxWords = n
		}
	}
	stats.AvgWordsPerChunk = int(math.Round(float64(stats.TotalWords) / float64(stats.ChunkCount)))
	return stats
}
