package analysis

import (
	"math"
	"sort"
)

// Constants for robust outlier detection.
const (
	// DefaultTopN is the maximum number of ranked outliers returned when the
	// caller does not specify a limit.
	DefaultTopN = 10

	// minOutlierSamples is the smallest duration sample that yields stable
	// median/MAD statistics; below this the detector reports nothing.
	minOutlierSamples = 8

	// outlierThreshold is the robust z-score above which a record counts as
	// unusually slow.
	outlierThreshold = 2.5

	// madNormalConsistency rescales MAD to be comparable to a standard
	// deviation under a normal-distribution assumption.
	madNormalConsistency = 0.6745

	// madFloor replaces a numerically zero MAD to avoid division by zero.
	madFloor = 1e-9
)

// DetectOutliers scores every record's duration against the median and
// median absolute deviation of the whole set, keeps those with robust
// z-score above 2.5, and returns them sorted by score descending, truncated
// to topN. topN <= 0 selects DefaultTopN. Ties in score keep input order.
//
// Median/MAD statistics are location- and scale-robust: unlike mean/stdev
// z-scores they are insensitive to the very outliers being detected.
//
// Non-finite durations are ignored. Fewer than 8 finite durations is an
// insufficient sample, not an error: the detector returns nil and callers
// must check for it.
func DetectOutliers(records []Record, topN int) []Outlier {
	if topN <= 0 {
		topN = DefaultTopN
	}

	durations := make([]float64, 0, len(records))
	for _, r := range records {
		if isFinite(r.Duration) {
			durations = append(durations, r.Duration)
		}
	}
	if len(durations) < minOutlierSamples {
		return nil
	}

	med := Median(durations)
	devs := make([]float64, len(durations))
	for i, d := range durations {
		devs[i] = math.Abs(d - med)
	}
	mad := Median(devs)
	if mad == 0 {
		mad = madFloor
	}
	scale := madNormalConsistency / mad

	var outliers []Outlier
	for _, r := range records {
		if !isFinite(r.Duration) {
			continue
		}
		if z := (r.Duration - med) * scale; z > outlierThreshold {
			outliers = append(outliers, Outlier{Record: r, Score: z})
		}
	}

	sort.SliceStable(outliers, func(i, j int) bool {
		return outliers[i].Score > outliers[j].Score
	})
	if len(outliers) > topN {
		outliers = outliers[:topN]
	}
	return outliers
}
