package chunker

// Strategy selects how a cut point is chosen when a target size lands inside
// a sentence.
type Strategy string

const (
	// SoftLimit lets a chunk grow past the target size to finish the
	// current sentence.
	SoftLimit Strategy = "soft_limit"
	// HardLimit never exceeds the target size, cutting mid-sentence when no
	// earlier boundary is usable.
	HardLimit Strategy = "hard_limit"
)

// ParseStrategy maps user-facing names ("soft", "hard") onto a Strategy.
// Unknown values resolve to SoftLimit.
func ParseStrategy(name string) Strategy {
	switch name {
	case "hard", string(HardLimit):
		return HardLimit
	default:
		return SoftLimit
	}
}

type splitOptions struct {
	strategy           Strategy
	preserveWhitespace bool
	minChunkSize       int
	maxChunkSize       int
	respectBoundaries  bool
	preserveEmptyLines bool
}

// SplitOption adjusts a single split call.
type SplitOption func(*splitOptions)

func defaultSplitOptions() splitOptions {
	return splitOptions{
		strategy:           SoftLimit,
		preserveWhitespace: true,
		minChunkSize:       1,
		respectBoundaries:  true,
	}
}

func applySplitOptions(opts []SplitOption) splitOptions {
	o := defaultSplitOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrategy sets the boundary tie-break rule.
func WithStrategy(s Strategy) SplitOption {
	return func(o *splitOptions) { o.strategy = s }
}

// WithPreserveWhitespace controls whitespace normalization: true (the
// default) only trims the ends of the input, false also collapses internal
// whitespace runs to single spaces.
func WithPreserveWhitespace(preserve bool) SplitOption {
	return func(o *splitOptions) { o.preserveWhitespace = preserve }
}

// WithMinChunkSize drops chunks shorter than n (words or characters
// depending on the split mode). Dropped chunks are discarded, not merged.
func WithMinChunkSize(n int) SplitOption {
	return func(o *splitOptions) { o.minChunkSize = n }
}

// WithMaxChunkSize overrides the per-chunk cap for word splitting. Zero
// means unset.
func WithMaxChunkSize(n int) SplitOption {
	return func(o *splitOptions) { o.maxChunkSize = n }
}

// WithSentenceBoundaries toggles sentence-boundary detection. When false,
// splitting degrades to fixed-size slicing.
func WithSentenceBoundaries(respect bool) SplitOption {
	return func(o *splitOptions) { o.respectBoundaries = respect }
}

// WithPreserveEmptyLines keeps blank lines during line splitting.
func WithPreserveEmptyLines(preserve bool) SplitOption {
	return func(o *splitOptions) { o.preserveEmptyLines = preserve }
}
