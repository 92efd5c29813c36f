package analysis

import "gonum.org/v1/gonum/floats"

// Summarize derives the session time span and duration percentiles from a
// record set. A record spans [StartTime, StartTime+Duration], so MaxTime is
// the latest end time. Records with non-finite fields are skipped per field.
// All fields are zero when nothing finite remains.
func Summarize(records []Record) StatsSummary {
	times := make([]float64, 0, 2*len(records))
	durations := make([]float64, 0, len(records))
	for _, r := range records {
		if isFinite(r.StartTime) {
			end := r.StartTime
			if isFinite(r.Duration) {
				end += r.Duration
			}
			times = append(times, r.StartTime, end)
		}
		if isFinite(r.Duration) {
			durations = append(durations, r.Duration)
		}
	}

	var s StatsSummary
	if len(times) > 0 {
		s.MinTime = floats.Min(times)
		s.MaxTime = floats.Max(times)
	}
	s.P50Duration = Percentile(durations, 0.5)
	s.P95Duration = Percentile(durations, 0.95)
	return s
}
