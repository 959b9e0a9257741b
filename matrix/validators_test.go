// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators and stacking.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/copent/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameRows covers nil inputs, matching and mismatched row counts.
func TestValidateSameRows(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		ms      []*matrix.Dense
		wantErr error
	}{
		{"first nil", []*matrix.Dense{nil, dense(2, 2)}, matrix.ErrNilMatrix},
		{"second nil", []*matrix.Dense{dense(2, 2), nil}, matrix.ErrNilMatrix},
		{"equal rows", []*matrix.Dense{dense(2, 3), dense(2, 1), dense(2, 5)}, nil},
		{"row mismatch", []*matrix.Dense{dense(2, 3), dense(3, 3)}, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameRows(tc.ms...)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSameCols covers matching and mismatched column counts.
func TestValidateSameCols(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameCols(MustDense(t, 2, 3), MustDense(t, 7, 3)))
	require.ErrorIs(t, matrix.ValidateSameCols(MustDense(t, 2, 3), MustDense(t, 2, 4)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameCols(nil), matrix.ErrNilMatrix)
}

// TestHStack joins columns in argument order.
func TestHStack(t *testing.T) {
	t.Parallel()

	x := NewFilledDense(t, 2, 1, []float64{1, 2})
	yz := NewFilledDense(t, 2, 2, []float64{3, 4, 5, 6})

	got, err := matrix.HStack(x, yz, x)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3, 4, 1}, {2, 5, 6, 2}}, got)

	_, err = matrix.HStack()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.HStack(x, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVStack joins observations in argument order.
func TestVStack(t *testing.T) {
	t.Parallel()

	s0 := NewFilledDense(t, 1, 2, []float64{1, 2})
	s1 := NewFilledDense(t, 2, 2, []float64{3, 4, 5, 6})

	got, err := matrix.VStack(s0, s1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, got)

	MustSet(t, got, 0, 0, -1) // result never aliases inputs
	require.Equal(t, 1.0, MustAt(t, s0, 0, 0))

	_, err = matrix.VStack(s0, MustDense(t, 1, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
