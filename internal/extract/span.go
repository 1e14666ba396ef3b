package extract

// TextSpan is a located substring of a message.
type TextSpan struct {
	Start, End int
	Text       string
}

// span is a half-open [Start, End) byte range.
type span struct {
	Start, End int
}

// overlaps reports whether two non-empty ranges intersect.
func (s span) overlaps(o span) bool {
	return s.Start < o.End && s.End > o.Start
}

// Allocator hands out non-overlapping byte ranges. Regie extraction
// claims through one allocator across all its patterns so that no two
// accepted matches ever share text.
type Allocator struct {
	claimed []span
}

// TryClaim claims [start, end) if it does not overlap any prior claim.
// It reports whether the claim succeeded.
func (a *Allocator) TryClaim(start, end int) bool {
	candidate := span{start, end}
	for _, c := range a.claimed {
		if candidate.overlaps(c) {
			return false
		}
	}
	a.claimed = append(a.claimed, candidate)
	return true
}

// Overlaps reports whether [start, end) intersects any claimed range
// without claiming it.
func (a *Allocator) Overlaps(start, end int) bool {
	candidate := span{start, end}
	for _, c := range a.claimed {
		if candidate.overlaps(c) {
			return true
		}
	}
	return false
}
