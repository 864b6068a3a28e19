package curve

import "sort"

// knotIndex returns the index of the knot equal to t, or -1.
func knotIndex(ts []float64, t float64) int {
	idx := sort.SearchFloat64s(ts, t)
	if idx < len(ts) && ts[idx] == t {
		return idx
	}
	return -1
}

// segmentIndex returns i such that ts[i] <= t <= ts[i+1]. Outside the range
// it returns the nearest boundary segment, which is what extrapolation uses.
//
// ts must be sorted and have at least two elements.
func segmentIndex(ts []float64, t float64) int {
	// First index with ts[i] >= t.
	idx := sort.SearchFloat64s(ts, t)

	if idx <= 0 {
		return 0
	}
	if idx >= len(ts) {
		return len(ts) - 2
	}
	return idx - 1
}
