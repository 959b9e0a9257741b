// SPDX-License-Identifier: MIT

package entropy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/copent/distance"
	"github.com/katalvlaran/copent/matrix"
)

// KNN estimates the differential entropy of the rows of x in nats.
//
// Stage 1 (Validate): x non-nil, metric and mode known, k >= 1, N > k.
// Stage 2 (Radii):    δ_i = distance to k-th neighbour (distance.KthNeighbor).
// Stage 3 (Sum):      ψ(N) − ψ(k) + log c_d + (d/N)·Σ log(2·δ_i).
//
// Errors:
//   - ErrNilMatrix (from matrix), ErrUnknownMetric / ErrUnknownMode (from distance).
//   - ErrInvalidParameter when k < 1.
//   - ErrInsufficientData and ErrInvalidParameter (both match) when k >= N.
//   - ErrDegenerateDistance when some δ_i == 0; the message names row i.
//
// Complexity: O(N²·d + N²·log N) time; memory per mode.
func KNN(x *matrix.Dense, k int, metric distance.Metric, mode distance.Mode) (float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return 0, fmt.Errorf("KNN: %w", err)
	}
	if k < 1 {
		return 0, fmt.Errorf("KNN: k=%d: %w", k, ErrInvalidParameter)
	}
	n, d := x.Shape()
	if k >= n {
		return 0, fmt.Errorf("KNN: k=%d needs N>%d, got %d: %w: %w",
			k, k, n, ErrInsufficientData, ErrInvalidParameter)
	}

	radii, err := distance.KthNeighbor(x, k, metric, mode)
	if err != nil {
		if errors.Is(err, distance.ErrNeighborOrder) {
			return 0, fmt.Errorf("KNN: %w: %w", err, ErrInvalidParameter)
		}
		return 0, fmt.Errorf("KNN: %w", err)
	}

	var sum float64
	for i, r := range radii {
		if r == 0 {
			return 0, fmt.Errorf("KNN: row %d: %w", i, ErrDegenerateDistance)
		}
		sum += math.Log(2 * r)
	}

	fn, fd := float64(n), float64(d)
	h := mathext.Digamma(fn) - mathext.Digamma(float64(k)) +
		metric.UnitBallLogVolume(d) + fd*sum/fn

	return h, nil
}
