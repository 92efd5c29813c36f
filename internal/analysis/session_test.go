package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionRecords is a small session with two widely separated behavioral
// groups of cluster-eligible records plus ineligible noise.
func sessionRecords() []Record {
	return []Record{
		{ID: "m1", Kind: KindMeasure, StartTime: 0, Duration: 5, Size: 0},
		{ID: "m2", Kind: KindMeasure, StartTime: 2, Duration: 6, Size: 0},
		{ID: "m3", Kind: KindMeasure, StartTime: 1, Duration: 4, Size: 0},
		{ID: "r1", Kind: KindResource, StartTime: 5000, Duration: 900, Size: 1e6},
		{ID: "r2", Kind: KindResource, StartTime: 5100, Duration: 950, Size: 2e6},
		{ID: "r3", Kind: KindResource, StartTime: 5050, Duration: 920, Size: 1.5e6},
		{ID: "mark1", Kind: KindMark, StartTime: 10},
		{ID: "task1", Kind: KindLongTask, StartTime: 100, Duration: 60},
		{ID: "task2", Kind: KindLongTask, StartTime: 300, Duration: 55},
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	opts := DefaultAnalysisOptions()
	opts.K = 2

	result, err := Analyze(sessionRecords(), opts)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Summary.MinTime)
	assert.Equal(t, 6050.0, result.Summary.MaxTime)

	require.NotNil(t, result.Clusters)
	assert.Len(t, result.Clusters, 6, "one assignment per eligible record")

	// Measures group together, resources group together, and apart.
	assert.Equal(t, result.Clusters["m1"], result.Clusters["m2"])
	assert.Equal(t, result.Clusters["m1"], result.Clusters["m3"])
	assert.Equal(t, result.Clusters["r1"], result.Clusters["r2"])
	assert.Equal(t, result.Clusters["r1"], result.Clusters["r3"])
	assert.NotEqual(t, result.Clusters["m1"], result.Clusters["r1"])

	for id, c := range result.Clusters {
		assert.GreaterOrEqual(t, c, 0, "record %s", id)
		assert.Less(t, c, opts.K, "record %s", id)
	}
	require.Len(t, result.ClusterSizes, opts.K)
	assert.Equal(t, 6, result.ClusterSizes[0]+result.ClusterSizes[1])
}

func TestAnalyze_Deterministic(t *testing.T) {
	opts := DefaultAnalysisOptions()
	opts.K = 2

	first, err := Analyze(sessionRecords(), opts)
	require.NoError(t, err)
	second, err := Analyze(sessionRecords(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Clusters, second.Clusters)
	assert.Equal(t, first.Centers, second.Centers)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestAnalyze_SkipsClusteringWhenTooFewRows(t *testing.T) {
	opts := DefaultAnalysisOptions()
	opts.K = 10 // more clusters than eligible records

	result, err := Analyze(sessionRecords(), opts)
	require.NoError(t, err)
	assert.Nil(t, result.Clusters, "sentinel: no clustering performed")
	assert.Nil(t, result.Centers)
	assert.Nil(t, result.ClusterSizes)
}

func TestAnalyze_ClusteringDisabled(t *testing.T) {
	opts := DefaultAnalysisOptions()
	opts.K = 0

	result, err := Analyze(sessionRecords(), opts)
	require.NoError(t, err)
	assert.Nil(t, result.Clusters)
	assert.NotZero(t, result.Summary.MaxTime)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	result, err := Analyze(nil, DefaultAnalysisOptions())
	require.NoError(t, err)

	assert.Equal(t, StatsSummary{}, result.Summary)
	assert.Empty(t, result.Outliers)
	assert.Nil(t, result.Clusters)
}

func TestAnalyze_OutliersFlagged(t *testing.T) {
	records := sessionRecords()
	// 9 finite durations total (8 above + mark has 0): enough sample, and
	// the resource group sits far above the median.
	result, err := Analyze(records, DefaultAnalysisOptions())
	require.NoError(t, err)

	require.NotEmpty(t, result.Outliers)
	for i := 1; i < len(result.Outliers); i++ {
		assert.LessOrEqual(t, result.Outliers[i].Score, result.Outliers[i-1].Score)
	}
	assert.Equal(t, "r2", result.Outliers[0].Record.ID, "largest duration ranks first")
}
