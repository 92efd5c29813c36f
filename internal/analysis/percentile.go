package analysis

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (p in [0, 1]) of values using
// linear interpolation between the two nearest ranks: the value at
// fractional index (n-1)*p of the ascending-sorted input. The input slice is
// not modified.
//
// Callers must filter non-finite values before calling; the engine does not
// defend against NaN or infinities here. Empty input returns 0.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := float64(len(sorted)-1) * p
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Median is the 50th percentile.
func Median(values []float64) float64 {
	return Percentile(values, 0.5)
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
