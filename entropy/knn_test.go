// SPDX-License-Identifier: MIT

package entropy_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/copent/distance"
	"github.com/katalvlaran/copent/entropy"
	"github.com/katalvlaran/copent/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *matrix.Dense {
	t.Helper()
	x, err := matrix.NewFromRows([][]float64{{1, 2}, {2, 5}, {10, 10}})
	require.NoError(t, err)
	return x
}

// TestKNN_Triangle pins the estimator on a hand-checked 3-point fixture.
func TestKNN_Triangle(t *testing.T) {
	h, err := entropy.KNN(triangle(t), 1, distance.Chebyshev, distance.Batch)
	require.NoError(t, err)
	assert.InDelta(t, 5.73, h, 0.01)
	// exact: 1.5 + (2/3)(2·log 6 + log 16)
	assert.InDelta(t, 1.5+(2.0/3)*(2*math.Log(6)+math.Log(16)), h, 1e-9)

	h, err = entropy.KNN(triangle(t), 1, distance.Euclidean, distance.OnDemand)
	require.NoError(t, err)
	assert.InDelta(t, 5.68, h, 0.01)
}

// TestKNN_ModesAgree verifies Batch and OnDemand give identical estimates.
func TestKNN_ModesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	rows := make([][]float64, 120)
	for i := range rows {
		rows[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	x, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	a, err := entropy.KNN(x, 3, distance.Euclidean, distance.Batch)
	require.NoError(t, err)
	b, err := entropy.KNN(x, 3, distance.Euclidean, distance.OnDemand)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestKNN_UniformCube checks the estimate on U(0,1)^2 is close to its true
// entropy of 0.
func TestKNN_UniformCube(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	rows := make([][]float64, 800)
	for i := range rows {
		rows[i] = []float64{rng.Float64(), rng.Float64()}
	}
	x, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	h, err := entropy.KNN(x, 3, distance.Chebyshev, distance.OnDemand)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, h, 0.15)
}

func TestKNN_Errors(t *testing.T) {
	x := triangle(t)

	_, err := entropy.KNN(x, 0, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, entropy.ErrInvalidParameter)

	_, err = entropy.KNN(x, 3, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, entropy.ErrInsufficientData)
	assert.ErrorIs(t, err, entropy.ErrInvalidParameter)

	_, err = entropy.KNN(nil, 1, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = entropy.KNN(x, 1, distance.Metric(4), distance.Batch)
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)

	dup, err := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}, {5, 5}})
	require.NoError(t, err)
	_, err = entropy.KNN(dup, 1, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, entropy.ErrDegenerateDistance)
	assert.Contains(t, err.Error(), "row 0")
}
