package analysis

import "fmt"

// Constants for k-means clustering configuration.
const (
	// DefaultKMeansSeed keeps clustering reproducible between sessions when
	// the caller does not pick a seed explicitly.
	DefaultKMeansSeed uint32 = 1337

	// DefaultKMeansMaxIterations caps Lloyd refinement rounds.
	DefaultKMeansMaxIterations = 25
)

// KMeansParams configures a clustering run.
type KMeansParams struct {
	K             int
	Seed          uint32
	MaxIterations int // <= 0 means DefaultKMeansMaxIterations
}

// DefaultKMeansParams returns parameters for the given cluster count with
// the default seed and iteration cap.
func DefaultKMeansParams(k int) KMeansParams {
	return KMeansParams{
		K:             k,
		Seed:          DefaultKMeansSeed,
		MaxIterations: DefaultKMeansMaxIterations,
	}
}

// KMeansResult holds the outcome of one clustering run.
type KMeansResult struct {
	Centers    [][]float64 // k centers of input dimensionality
	Assignment []int       // per-row cluster index in [0, k)
	Iterations int         // refinement rounds actually performed
}

// KMeans groups rows into params.K clusters using k-means++ initialisation
// followed by Lloyd refinement. The run is fully deterministic: identical
// rows, K, seed, and iteration cap always yield identical centers and
// assignment, independent of execution environment.
//
// Distances are squared Euclidean throughout; only relative ordering
// matters, so the square root is skipped. Assignment ties go to the lowest
// center index. A cluster left empty after an update round is reseeded with
// a uniformly random input row drawn from the same stream, which keeps
// determinism tied purely to the seed sequence.
//
// Empty or ragged rows, or K outside [1, len(rows)], are caller contract
// violations and return an error. Non-finite cell values are not filtered;
// they propagate as NaN results.
func KMeans(rows [][]float64, params KMeansParams) (*KMeansResult, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("kmeans: empty matrix")
	}
	dims := len(rows[0])
	for i, row := range rows {
		if len(row) != dims {
			return nil, fmt.Errorf("kmeans: ragged matrix: row %d has %d columns, want %d", i, len(row), dims)
		}
	}
	if params.K < 1 || params.K > n {
		return nil, fmt.Errorf("kmeans: k=%d outside [1, %d]", params.K, n)
	}
	maxIter := params.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultKMeansMaxIterations
	}

	rng := NewRandStream(params.Seed)
	centers := seedCenters(rows, params.K, rng)

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}
	counts := make([]int, params.K)
	sums := make([][]float64, params.K)
	for c := range sums {
		sums[c] = make([]float64, dims)
	}

	iterations := 0
	for iter := 0; iter < maxIter; iter++ {
		iterations = iter + 1

		// Assign: nearest center by squared distance, ties to the lowest
		// center index.
		changed := false
		for i, row := range rows {
			best := 0
			bestDist := sqDist(row, centers[0])
			for c := 1; c < params.K; c++ {
				if d := sqDist(row, centers[c]); d < bestDist {
					best = c
					bestDist = d
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
		}

		// Update: each center moves to the mean of its members; an empty
		// cluster is reseeded from a random input row.
		for c := range counts {
			counts[c] = 0
			for j := range sums[c] {
				sums[c][j] = 0
			}
		}
		for i, row := range rows {
			c := assignment[i]
			counts[c]++
			for j, v := range row {
				sums[c][j] += v
			}
		}
		for c := 0; c < params.K; c++ {
			if counts[c] == 0 {
				copy(centers[c], rows[int(rng.Next()*float64(n))])
				continue
			}
			for j := 0; j < dims; j++ {
				centers[c][j] = sums[c][j] / float64(counts[c])
			}
		}

		if !changed {
			break
		}
	}

	return &KMeansResult{Centers: centers, Assignment: assignment, Iterations: iterations}, nil
}

// seedCenters implements k-means++ initialisation: the first center is drawn
// uniformly, each further one with probability proportional to its squared
// distance from the nearest already-chosen center. Candidates are walked in
// input order so the selection is reproducible.
func seedCenters(rows [][]float64, k int, rng *RandStream) [][]float64 {
	n := len(rows)
	dims := len(rows[0])
	centers := make([][]float64, 0, k)

	first := make([]float64, dims)
	copy(first, rows[int(rng.Next()*float64(n))])
	centers = append(centers, first)

	dist := make([]float64, n)
	for len(centers) < k {
		var total float64
		for i, row := range rows {
			d := sqDist(row, centers[0])
			for _, c := range centers[1:] {
				if dc := sqDist(row, c); dc < d {
					d = dc
				}
			}
			dist[i] = d
			total += d
		}

		// Weighted pick: consume the threshold walking rows in order. The
		// fallback to the last row covers float residue when the walk does
		// not quite reach zero.
		r := rng.Next() * total
		picked := n - 1
		for i, d := range dist {
			r -= d
			if r <= 0 {
				picked = i
				break
			}
		}

		next := make([]float64, dims)
		copy(next, rows[picked])
		centers = append(centers, next)
	}
	return centers
}

// sqDist returns the squared Euclidean distance between two equal-length
// vectors.
func sqDist(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum
}
