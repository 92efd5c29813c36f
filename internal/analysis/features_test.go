package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterFeatures_EligibleKindsOnly(t *testing.T) {
	records := []Record{
		{ID: "m1", Kind: KindMeasure, StartTime: 1, Duration: 2, Size: 0},
		{ID: "r1", Kind: KindResource, StartTime: 3, Duration: 4, Size: 999},
		{ID: "mk", Kind: KindMark, StartTime: 5},
		{ID: "lt", Kind: KindLongTask, StartTime: 6, Duration: 80},
	}

	rows := ClusterFeatures(records)
	require.Len(t, rows, 2)
	assert.Equal(t, "m1", rows[0].ID)
	assert.Equal(t, "r1", rows[1].ID)
}

func TestClusterFeatures_Vector(t *testing.T) {
	rows := ClusterFeatures([]Record{
		{ID: "r", Kind: KindResource, StartTime: 12.5, Duration: 30, Size: 999},
	})
	require.Len(t, rows, 1)

	vec := rows[0].Vector
	require.Len(t, vec, 3)
	assert.Equal(t, 12.5, vec[0])
	assert.Equal(t, 30.0, vec[1])
	assert.InDelta(t, 3.0, vec[2], 1e-12, "log10(1+999)")
}

func TestClusterFeatures_ZeroSize(t *testing.T) {
	rows := ClusterFeatures([]Record{
		{ID: "m", Kind: KindMeasure, StartTime: 1, Duration: 2},
	})
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Vector[2], "log10(1+0)")
}

func TestClusterFeatures_DropsNonFinite(t *testing.T) {
	records := []Record{
		{ID: "ok", Kind: KindMeasure, StartTime: 1, Duration: 2},
		{ID: "nan", Kind: KindMeasure, StartTime: math.NaN(), Duration: 2},
		{ID: "inf", Kind: KindMeasure, StartTime: 1, Duration: math.Inf(1)},
	}

	rows := ClusterFeatures(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "ok", rows[0].ID)
}
