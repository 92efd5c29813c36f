package analysis

import "math"

// ClusterEligible reports whether a record's kind takes part in spatial
// clustering. Only measures and resource loads carry a meaningful
// start/duration/size triple.
func ClusterEligible(r Record) bool {
	return r.Kind == KindMeasure || r.Kind == KindResource
}

// ClusterFeatures builds the clustering feature matrix for the eligible
// records: [startTime, duration, log10(1+size)]. The log compresses the
// heavy-tailed size axis so it does not dominate the other two after
// standardization.
//
// Rows with any non-finite component are dropped here; the standardizer and
// clusterer downstream do not defend against them.
func ClusterFeatures(records []Record) []FeatureRow {
	rows := make([]FeatureRow, 0, len(records))
	for _, r := range records {
		if !ClusterEligible(r) {
			continue
		}
		vec := []float64{r.StartTime, r.Duration, math.Log10(1 + r.Size)}
		if !isFinite(vec[0]) || !isFinite(vec[1]) || !isFinite(vec[2]) {
			continue
		}
		rows = append(rows, FeatureRow{ID: r.ID, Vector: vec})
	}
	return rows
}
