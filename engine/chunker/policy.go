package chunker

// SelectBoundary picks the cut point for the chunk starting at start with a
// size target at target, given sorted candidate boundaries.
//
// SoftLimit returns the first boundary at or past the target so the current
// sentence can finish; when no boundary lies past the target it settles for
// the last one available. HardLimit returns the largest boundary at or
// before the target; when none exists, or the candidate would not advance
// past start, it forces a cut exactly at the target. Either way the result
// is strictly greater than start whenever target is, which keeps the
// chunking loop advancing.
func SelectBoundary(boundaries []int, start, target int, strategy Strategy) int {
	if len(boundaries) == 0 {
		return target
	}
	if strategy == HardLimit {
		cut := -1
		for _, b := range boundaries {
			if b > target {
				break
			}
			cut = b
		}
		if cut <= start {
			return target
		}
		return cut
	}
	for _, b := range boundaries {
		if b >= target {
			return b
		}
	}
	if last := boundaries[len(boundaries)-1]; last > start {
		return last
	}
	return target
}
