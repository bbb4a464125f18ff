package chunker

import (
	"sort"
	"unicode/utf8"
)

// MapWordBoundaries converts character-level sentence boundaries into word
// indices, where a value v means "a sentence ends after the word at index
// v-1". It assumes words are separated by exactly one space, matching the
// whitespace-collapsed text the boundaries were computed over. A boundary
// landing at a word's end, or inside the single separating space after it,
// belongs to that word; boundaries that never match a span are dropped.
func MapWordBoundaries(words []string, charBoundaries []int) []int {
	if len(words) == 0 || len(charBoundaries) == 0 {
		return nil
	}
	out := make([]int, 0, len(charBoundaries))
	ci := 0
	pos := 0
	for wi, word := range words {
		end := pos + utf8.RuneCountInString(word)
		for ci < len(charBoundaries) && charBoundaries[ci] <= end+1 {
			if charBoundaries[ci] >= pos {
				out = append(out, wi+1)
			}
			ci++
		}
		pos = end + 1
	}
	return dedupeSorted(out)
}

// dedupeSorted re-sorts and deduplicates in place. Duplicates cannot occur
// for well-formed input, but the word splitter depends on strictly
// increasing boundaries, so the result is normalized defensively.
func dedupeSorted(bounds []int) []int {
	if len(bounds) < 2 {
		return bounds
	}
	sort.Ints(bounds)
	out := bounds[:1]
	for _, b := range bounds[1:] {
		if b != out[len(out)-1] {
			out = append(out, b)
		}
	}
	return out
}
