package distance_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/copent/distance"
	"github.com/katalvlaran/copent/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle is the 3-point fixture {(1,2),(2,5),(10,10)}.
func triangle(t *testing.T) *matrix.Dense {
	t.Helper()
	x, err := matrix.NewFromRows([][]float64{{1, 2}, {2, 5}, {10, 10}})
	require.NoError(t, err)
	return x
}

// TestParseMetric verifies canonical names, aliases and rejection.
func TestParseMetric(t *testing.T) {
	tests := []struct {
		name string
		want distance.Metric
	}{
		{"chebychev", distance.Chebyshev},
		{"Chebyshev", distance.Chebyshev},
		{" maximum ", distance.Chebyshev},
		{"euclidean", distance.Euclidean},
		{"L2", distance.Euclidean},
	}
	for _, tc := range tests {
		got, err := distance.ParseMetric(tc.name)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := distance.ParseMetric("manhattan")
	assert.ErrorIs(t, err, distance.ErrUnknownMetric, "unknown names must be rejected")

	assert.Equal(t, "chebychev", distance.Chebyshev.String())
	assert.Equal(t, "euclidean", distance.Euclidean.String())
	assert.ErrorIs(t, distance.Metric(7).Validate(), distance.ErrUnknownMetric)
}

// TestParseMode verifies mode names.
func TestParseMode(t *testing.T) {
	m, err := distance.ParseMode("on-demand")
	assert.NoError(t, err)
	assert.Equal(t, distance.OnDemand, m)

	m, err = distance.ParseMode("batch")
	assert.NoError(t, err)
	assert.Equal(t, distance.Batch, m)

	_, err = distance.ParseMode("lazy")
	assert.ErrorIs(t, err, distance.ErrUnknownMode)
	assert.ErrorIs(t, distance.Mode(9).Validate(), distance.ErrUnknownMode)
}

// TestBetween checks both metrics, symmetry and identity.
func TestBetween(t *testing.T) {
	p := []float64{1, 2}
	q := []float64{2, 5}

	assert.InDelta(t, math.Sqrt(10), distance.Euclidean.Between(p, q), 1e-12)
	assert.Equal(t, 3.0, distance.Chebyshev.Between(p, q))
	assert.Equal(t, distance.Euclidean.Between(p, q), distance.Euclidean.Between(q, p), "symmetric")
	assert.Equal(t, 0.0, distance.Chebyshev.Between(p, p), "zero on identical points")
}

// TestUnitBallLogVolume checks cd for small dimensions.
func TestUnitBallLogVolume(t *testing.T) {
	assert.Equal(t, 0.0, distance.Chebyshev.UnitBallLogVolume(5))
	// d=1: π^0.5 / 2 / Γ(1.5) = 1.
	assert.InDelta(t, 0.0, distance.Euclidean.UnitBallLogVolume(1), 1e-12)
	// d=2: π / 4.
	assert.InDelta(t, math.Log(math.Pi/4), distance.Euclidean.UnitBallLogVolume(2), 1e-12)
	// d=3: (4/3)π / 8 = π/6.
	assert.InDelta(t, math.Log(math.Pi/6), distance.Euclidean.UnitBallLogVolume(3), 1e-12)
}

// TestPairwise verifies the symmetric zero-diagonal matrix.
func TestPairwise(t *testing.T) {
	d, err := distance.Pairwise(triangle(t), distance.Chebyshev)
	require.NoError(t, err)

	want := [][]float64{{0, 3, 9}, {3, 0, 8}, {9, 8, 0}}
	for i := range want {
		for j := range want[i] {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], v, "D[%d][%d]", i, j)
		}
	}
}

// TestKthNeighbor_Triangle checks k=1 and k=2 radii.
func TestKthNeighbor_Triangle(t *testing.T) {
	got, err := distance.KthNeighbor(triangle(t), 1, distance.Chebyshev, distance.Batch)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 8}, got)

	got, err = distance.KthNeighbor(triangle(t), 2, distance.Chebyshev, distance.OnDemand)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8, 9}, got)
}

// TestKthNeighbor_ModesAgree verifies Batch and OnDemand are bit-identical,
// including on a discretised grid full of tied distances.
func TestKthNeighbor_ModesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	rows := make([][]float64, 60)
	for i := range rows {
		rows[i] = []float64{float64(rng.IntN(10)) / 10, float64(rng.IntN(10)) / 10, rng.NormFloat64()}
	}
	x, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	for _, m := range []distance.Metric{distance.Chebyshev, distance.Euclidean} {
		for _, k := range []int{1, 3, 7} {
			a, err := distance.KthNeighbor(x, k, m, distance.Batch)
			require.NoError(t, err)
			b, err := distance.KthNeighbor(x, k, m, distance.OnDemand)
			require.NoError(t, err)
			assert.Equal(t, a, b, "metric=%v k=%d", m, k)
		}
	}
}

// TestKthNeighbor_Errors covers invalid k, metric, mode and nil input.
func TestKthNeighbor_Errors(t *testing.T) {
	x := triangle(t)

	_, err := distance.KthNeighbor(x, 0, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, distance.ErrNeighborOrder)
	_, err = distance.KthNeighbor(x, 3, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, distance.ErrNeighborOrder)
	_, err = distance.KthNeighbor(x, 1, distance.Metric(5), distance.Batch)
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
	_, err = distance.KthNeighbor(x, 1, distance.Chebyshev, distance.Mode(5))
	assert.ErrorIs(t, err, distance.ErrUnknownMode)
	_, err = distance.KthNeighbor(nil, 1, distance.Chebyshev, distance.Batch)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
