package segment

import (
	"strings"
	"unicode"
)

// abbreviationWindow bounds how far back the fallback scanner looks when
// deciding whether a period belongs to an abbreviation.
const abbreviationWindow = 15

// fallbackBoundaries scans for runs of sentence terminators (".", "!", "?")
// and records the rune offset immediately after each run that is followed by
// whitespace or end of input. A lone period preceded by a known abbreviation
// is skipped so that "Dr. Smith" does not end a sentence at "Dr.".
func fallbackBoundaries(text string) []int {
	runes := []rune(text)
	var bounds []int
	for i := 0; i < len(runes); {
		if !isTerminator(runes[i]) {
			i++
			continue
		}
		runStart := i
		for i < len(runes) && isTerminator(runes[i]) {
			i++
		}
		if i-runStart == 1 && runes[runStart] == '.' && endsInAbbreviation(runes, runStart) {
			continue
		}
		if i == len(runes) || unicode.IsSpace(runes[i]) {
			bounds = append(bounds, i)
		}
	}
	return bounds
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// endsInAbbreviation reports whether the token ending at the period at
// periodIdx matches the abbreviation set. The lookup is case-insensitive and
// tolerates surrounding brackets or quotes.
func endsInAbbreviation(runes []rune, periodIdx int) bool {
	start := periodIdx - abbreviationWindow
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(string(runes[start : periodIdx+1]))
	fields := strings.Fields(window)
	if len(fields) == 0 {
		return false
	}
	token := strings.TrimLeft(fields[len(fields)-1], "([{\"'")
	if _, ok := abbreviations[token]; ok {
		return true
	}
	_, ok := abbreviations[strings.TrimSuffix(token, ".")+"."]
	return ok
}
