// SPDX-License-Identifier: MIT

package copent_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/copent/matrix"
)

// ceTol is the tolerance for estimates compared against analytic values.
const ceTol = 0.1

// mustRows builds a matrix or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// normalRows draws n×d standard normal rows from a fixed seed.
func normalRows(n, d int, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}
	return rows
}
