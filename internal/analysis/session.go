package analysis

import "fmt"

// AnalysisOptions configures a full-session analysis pass.
type AnalysisOptions struct {
	TopN          int // outlier limit; <= 0 means DefaultTopN
	K             int // cluster count; <= 0 disables clustering
	Seed          uint32
	MaxIterations int // <= 0 means DefaultKMeansMaxIterations
}

// DefaultAnalysisOptions returns the reference configuration: top 10
// outliers, 4 clusters, seed 1337, 25 refinement rounds.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		TopN:          DefaultTopN,
		K:             4,
		Seed:          DefaultKMeansSeed,
		MaxIterations: DefaultKMeansMaxIterations,
	}
}

// Analysis is the output of one engine pass over a record set.
type Analysis struct {
	Summary  StatsSummary
	Outliers []Outlier

	// Clusters is nil when clustering was not performed (disabled, or fewer
	// eligible feature rows than K). Callers must check before use.
	Clusters     ClusterAssignment
	Centers      [][]float64 // standardized-space centers; nil with Clusters
	ClusterSizes []int       // occupancy per cluster index; nil with Clusters
}

// Analyze runs the whole pipeline over a record set: summary statistics,
// robust outlier detection, and, when enough cluster-eligible records exist,
// standardization and k-means clustering of the feature matrix.
//
// The caller supplies records already filtered and deduplicated. Fewer
// eligible feature rows than opts.K skips clustering rather than failing;
// genuine contract violations from the clusterer are returned as errors.
func Analyze(records []Record, opts AnalysisOptions) (*Analysis, error) {
	out := &Analysis{
		Summary:  Summarize(records),
		Outliers: DetectOutliers(records, opts.TopN),
	}

	if opts.K <= 0 {
		return out, nil
	}
	features := ClusterFeatures(records)
	if len(features) < opts.K {
		return out, nil
	}

	matrix := make([][]float64, len(features))
	for i, f := range features {
		matrix[i] = f.Vector
	}
	standardized, err := StandardizeColumns(matrix)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	result, err := KMeans(standardized, KMeansParams{
		K:             opts.K,
		Seed:          opts.Seed,
		MaxIterations: opts.MaxIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	out.Clusters = make(ClusterAssignment, len(features))
	out.ClusterSizes = make([]int, opts.K)
	for i, f := range features {
		c := result.Assignment[i]
		out.Clusters[f.ID] = c
		out.ClusterSizes[c]++
	}
	out.Centers = result.Centers
	return out, nil
}
