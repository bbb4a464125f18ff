package segment

import (
	"sync"
	"unicode"
	"unicode/utf8"
)

// Detector finds sentence boundaries for a fixed locale. Provider selection
// happens lazily on the first call and is memoized for the life of the
// detector; a detector is safe for concurrent reuse after that.
type Detector struct {
	locale   string
	once     sync.Once
	provider Provider
	injected bool
}

// NewDetector returns a detector for the given BCP-47 locale. When the
// locale is unsupported the detector silently uses the punctuation fallback.
func NewDetector(locale string) *Detector {
	return &Detector{locale: locale}
}

// NewDetectorWithProvider returns a detector bound to the given provider,
// bypassing locale-based selection. Intended for tests.
func NewDetectorWithProvider(locale string, p Provider) *Detector {
	return &Detector{locale: locale, provider: p, injected: true}
}

func (d *Detector) selectProvider() {
	if d.injected {
		return
	}
	if supportsLocale(d.locale) {
		d.provider = NewUAX29Provider()
	}
}

// FindBoundaries returns the rune offsets at which sentences end, in
// strictly ascending order. Offsets exclude trailing whitespace. On the
// provider path the final sentence's end is not recorded, since nothing
// follows it.
func (d *Detector) FindBoundaries(text string) []int {
	if text == "" {
		return nil
	}
	d.once.Do(d.selectProvider)
	if d.provider == nil {
		return fallbackBoundaries(text)
	}
	return providerBoundaries(d.provider, text)
}

func providerBoundaries(p Provider, text string) []int {
	total := utf8.RuneCountInString(text)
	spans := p.Segment(text)
	runes := []rune(text)
	bounds := make([]int, 0, len(spans))
	for _, sp := range spans {
		spanEnd := sp.Start + sp.Len
		if spanEnd >= total || spanEnd > len(runes) {
			continue
		}
		end := spanEnd
		for end > sp.Start && unicode.IsSpace(runes[end-1]) {
			end--
		}
		if end > sp.Start {
			bounds = append(bounds, end)
		}
	}
	return bounds
}
