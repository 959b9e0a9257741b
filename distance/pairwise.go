package distance

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/copent/matrix"
)

// Pairwise builds the N×N distance matrix of the rows of x.
//
// Algorithm Outline:
//  1. Allocate N×N zeros (diagonal stays 0).
//  2. For i < j compute D[i][j] = m.Between(x_i, x_j) and mirror into D[j][i].
//
// Complexity:
//
//	Time   = O(N²·d)
//	Memory = O(N²)
func Pairwise(x *matrix.Dense, m Metric) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}

	n := x.Rows()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		pi := x.RowView(i)
		for j = i + 1; j < n; j++ {
			v = m.Between(pi, x.RowView(j))
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Pairwise: %w", err)
			}
			if err = d.Set(j, i, v); err != nil {
				return nil, fmt.Errorf("Pairwise: %w", err)
			}
		}
	}

	return d, nil
}

// KthNeighbor returns, for every row i of x, the distance from x_i to its
// k-th nearest neighbour.
//
// Each row's distance list (self included, at distance 0) is sorted ascending
// and the entry at index k is taken, so ties between neighbours resolve to the
// same value whatever their order. Batch and OnDemand compute every distance
// with the same Between call, hence return bit-identical results.
//
// Errors:
//   - ErrNilMatrix (from matrix), ErrUnknownMetric, ErrUnknownMode.
//   - ErrNeighborOrder when k < 1 or k >= N.
//
// Complexity:
//
//	Time   = O(N²·d + N²·log N)
//	Memory = O(N²) (Batch) or O(N) (OnDemand)
func KthNeighbor(x *matrix.Dense, k int, m Metric, mode Mode) ([]float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("KthNeighbor: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("KthNeighbor: %w", err)
	}
	if err := mode.Validate(); err != nil {
		return nil, fmt.Errorf("KthNeighbor: %w", err)
	}
	n := x.Rows()
	if k < 1 || k >= n {
		return nil, fmt.Errorf("KthNeighbor: k=%d, N=%d: %w", k, n, ErrNeighborOrder)
	}

	if mode == OnDemand {
		return kthOnDemand(x, k, m), nil
	}

	return kthBatch(x, k, m)
}

// kthBatch selects from rows of the precomputed pairwise matrix.
func kthBatch(x *matrix.Dense, k int, m Metric) ([]float64, error) {
	d, err := Pairwise(x, m)
	if err != nil {
		return nil, fmt.Errorf("KthNeighbor: %w", err)
	}
	n := x.Rows()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		row, err := d.Row(i) // copy: sorting must not disturb the matrix
		if err != nil {
			return nil, fmt.Errorf("KthNeighbor: %w", err)
		}
		slices.Sort(row)
		out[i] = row[k]
	}

	return out, nil
}

// kthOnDemand recomputes one row of distances at a time into a single buffer.
func kthOnDemand(x *matrix.Dense, k int, m Metric) []float64 {
	n := x.Rows()
	out := make([]float64, n)
	buf := make([]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		pi := x.RowView(i)
		for j = 0; j < n; j++ {
			if j == i {
				buf[j] = 0
				continue
			}
			buf[j] = m.Between(pi, x.RowView(j))
		}
		slices.Sort(buf)
		out[i] = buf[k]
	}

	return out
}
