package analysis

// RecordKind enumerates the categories of performance records the engine
// understands.
type RecordKind string

// Record kinds. Measures and resource loads carry the full
// start/duration/size triple used for spatial clustering; marks and long
// tasks contribute to summaries and outlier detection only.
const (
	KindMark     RecordKind = "mark"
	KindMeasure  RecordKind = "measure"
	KindResource RecordKind = "resource"
	KindLongTask RecordKind = "longtask"
)

// Record is a single timestamped performance measurement. Records are
// created by the caller before the engine is invoked and are never mutated
// here; identity is the ID, so two records with equal IDs refer to the same
// observation.
//
// Size is optional: callers resolve any fallback chain to a single
// non-negative value (0 when not applicable) before handing records over.
type Record struct {
	ID        string
	Kind      RecordKind
	StartTime float64 // milliseconds from session origin
	Duration  float64 // milliseconds
	Size      float64 // payload bytes; 0 when not applicable
}

// FeatureRow is one record's clustering feature vector. Produced transiently
// by ClusterFeatures and not retained.
type FeatureRow struct {
	ID     string
	Vector []float64
}

// Outlier pairs a record with its robust z-score.
type Outlier struct {
	Record Record
	Score  float64
}

// ClusterAssignment maps record IDs to cluster indices in [0, k). Every ID
// present in the clustered feature set appears exactly once. Iteration order
// is not defined.
type ClusterAssignment map[string]int

// StatsSummary holds the session span and duration percentiles for a record
// set. All fields are zero when the input is empty.
type StatsSummary struct {
	MinTime     float64
	MaxTime     float64
	P50Duration float64
	P95Duration float64
}
