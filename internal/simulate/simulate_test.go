package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/copent/internal/simulate"
)

func TestGaussianPair(t *testing.T) {
	x, err := simulate.GaussianPair(2000, 0.8, 1)
	require.NoError(t, err)
	assert.Equal(t, 2000, x.Rows())
	assert.Equal(t, 2, x.Cols())

	a, err := x.Col(0)
	require.NoError(t, err)
	b, err := x.Col(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, stat.Correlation(a, b, nil), 0.05)

	_, err = simulate.GaussianPair(10, 1, 1)
	assert.ErrorIs(t, err, simulate.ErrInvalidParameter)
}

func TestGaussianMI(t *testing.T) {
	assert.InDelta(t, 0.5108, simulate.GaussianMI(0.8), 1e-4)
	assert.Equal(t, 0.0, simulate.GaussianMI(0))
}

// TestBlocks checks the layout and per-block means.
func TestBlocks(t *testing.T) {
	x, err := simulate.Blocks([]int{300, 300}, []float64{0, 5}, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 600, x.Rows())

	col, err := x.Col(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, stat.Mean(col[:300], nil), 0.2)
	assert.InDelta(t, 5.0, stat.Mean(col[300:], nil), 0.2)

	_, err = simulate.Blocks([]int{1}, []float64{0, 1}, 1, 3)
	assert.ErrorIs(t, err, simulate.ErrInvalidParameter)
}

func TestShiftedPair(t *testing.T) {
	s0, s1, err := simulate.ShiftedPair(100, 2, 1.5, 9)
	require.NoError(t, err)
	assert.Equal(t, 100, s0.Rows())
	assert.Equal(t, 2, s1.Cols())
}

// TestCoupledAR verifies determinism and the lag-1 coupling.
func TestCoupledAR(t *testing.T) {
	x1, y1, err := simulate.CoupledAR(500, 0.9, 4)
	require.NoError(t, err)
	x2, _, err := simulate.CoupledAR(500, 0.9, 4)
	require.NoError(t, err)
	assert.Equal(t, x1.String(), x2.String())

	xs, err := x1.Col(0)
	require.NoError(t, err)
	ys, err := y1.Col(0)
	require.NoError(t, err)
	assert.Greater(t, stat.Correlation(xs[1:], ys[:499], nil), 0.4)

	_, _, err = simulate.CoupledAR(1, 0.9, 4)
	assert.ErrorIs(t, err, simulate.ErrInvalidParameter)
}

func TestChain(t *testing.T) {
	x, y, z, err := simulate.Chain(300, 0.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 300, x.Rows())
	assert.Equal(t, 300, y.Rows())

	xs, err := x.Col(0)
	require.NoError(t, err)
	zs, err := z.Col(0)
	require.NoError(t, err)
	assert.Greater(t, stat.Correlation(xs, zs, nil), 0.8)

	_, _, _, err = simulate.Chain(0, 0.5, 2)
	assert.ErrorIs(t, err, simulate.ErrInvalidParameter)
}
