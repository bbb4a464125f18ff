package segment

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/sentences"
	"golang.org/x/text/language"
)

// uax29Provider segments text with the UAX #29 default sentence rules.
type uax29Provider struct{}

// NewUAX29Provider returns the segmentation provider backed by
// github.com/clipperhouse/uax29.
func NewUAX29Provider() Provider {
	return uax29Provider{}
}

func (uax29Provider) Segment(text string) []Span {
	seg := sentences.NewSegmenter([]byte(text))
	spans := make([]Span, 0, 8)
	start := 0
	for seg.Next() {
		n := utf8.RuneCount(seg.Bytes())
		spans = append(spans, Span{Start: start, Len: n})
		start += n
	}
	if seg.Err() != nil {
		return nil
	}
	return spans
}

// segmenterLanguages lists base languages for which the UAX #29 default
// rules produce reliable sentence boundaries. Locales outside this set fall
// back to punctuation scanning.
var segmenterLanguages = map[string]struct{}{
	"en": {}, "de": {}, "fr": {}, "es": {}, "pt": {}, "it": {},
	"nl": {}, "sv": {}, "da": {}, "nb": {}, "no": {}, "fi": {},
	"pl": {}, "cs": {}, "sk": {}, "ro": {}, "hu": {}, "el": {},
	"tr": {}, "az": {}, "ru": {}, "uk": {}, "bg": {}, "sr": {},
	"hr": {}, "ar": {}, "he": {}, "hi": {}, "id": {}, "vi": {},
	"ja": {}, "ko": {}, "zh": {}, "th": {},
}

// supportsLocale reports whether the UAX #29 provider covers the locale.
// Unparseable tags are unsupported.
func supportsLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return false
	}
	_, ok := segmenterLanguages[base.String()]
	return ok
}
