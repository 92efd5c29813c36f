package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// StandardizeColumns rescales each column of rows to zero mean and unit
// sample variance (n-1 denominator) so that features on different scales
// contribute comparably to a distance metric. The input is not modified.
//
// A column whose standard deviation is zero or non-finite keeps its scale:
// the divisor falls back to 1 and the column is only shifted, so a constant
// column maps to all zeros. Non-finite cell values are not filtered here;
// they propagate into the output.
//
// Empty or ragged input is a caller contract violation and returns an error.
func StandardizeColumns(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("standardize: empty matrix")
	}
	dims := len(rows[0])
	for i, row := range rows {
		if len(row) != dims {
			return nil, fmt.Errorf("standardize: ragged matrix: row %d has %d columns, want %d", i, len(row), dims)
		}
	}

	out := make([][]float64, len(rows))
	for i := range out {
		out[i] = make([]float64, dims)
	}

	col := make([]float64, len(rows))
	for j := 0; j < dims; j++ {
		for i, row := range rows {
			col[i] = row[j]
		}
		mu := stat.Mean(col, nil)
		// Sample standard deviation; NaN for a single row, which the
		// fallback below treats the same as a constant column.
		sd := stat.StdDev(col, nil)
		if sd == 0 || !isFinite(sd) {
			sd = 1
		}
		for i, row := range rows {
			out[i][j] = (row[j] - mu) / sd
		}
	}
	return out, nil
}
