package skyline

import "math"

// estimate scores how close entry sits to the low end (0) or high end (1) of
// dim's current value range, per spec.md S:4.3:
//
//	0 if dim is empty
//	1 if dim's min equals its max (a single distinct value)
//	0 if entry is below dim's minimum
//	1 if entry is above dim's maximum
//	otherwise |entry.value - min| / |max - min|
func estimate(entry dimEntry, dim *dimIndex) float64 {
	first, ok := dim.min()
	if !ok {
		return 0
	}
	last, _ := dim.max()
	if first.value == last.value {
		return 1
	}
	if entry.less(first) {
		return 0
	}
	if last.less(entry) {
		return 1
	}
	return math.Abs(entry.value-first.value) / math.Abs(last.value-first.value)
}

// lowerDimension returns the dimension that minimizes estimate: the
// dimension on which the candidate entries sit closest to the low end of
// their current range, so a forward scan from the start of that dimension's
// index visits the fewest candidates. A score of 0 terminates the search
// early. Ties go to the first (lowest-index) dimension encountered.
func lowerDimension(entries []dimEntry, indexes []*dimIndex) int {
	d := 0
	lower := 1.0
	for i, e := range entries {
		est := estimate(e, indexes[i])
		if est == 0 {
			return i
		}
		if est < lower {
			lower = est
			d = i
		}
	}
	return d
}

// upperDimension returns the dimension that maximizes estimate: the
// dimension on which the candidate entries sit closest to the high end of
// their current range. A score of 1 terminates the search early. Ties go to
// the first (lowest-index) dimension encountered.
func upperDimension(entries []dimEntry, indexes []*dimIndex) int {
	d := 0
	upper := 0.0
	for i, e := range entries {
		est := estimate(e, indexes[i])
		if est == 1 {
			return i
		}
		if est > upper {
			upper = est
			d = i
		}
	}
	return d
}
