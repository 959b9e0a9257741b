// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for Dense and statistics.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/copent/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Prefer MustDense when subsequent steps assume non-nil Dense.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return d
}

// NewFilledDense BUILDS an r×c *Dense from row-major vals or fails the test.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense RETURNS an r×c *Dense with deterministic U(-1,1) values by seed.
// Sweep multiple seeds in table-driven tests to increase coverage.
func RandFilledDense(t *testing.T, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// MustSet SETS m[i,j]=v or fails the test.
func MustSet(t *testing.T, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m equals the row-major table want exactly.
// Use with integer-like matrices.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: got %d, want %d", m.Rows(), len(want))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols: got %d, want %d", m.Cols(), len(want[i]))
		}
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: got %g, want %g", i, j, got, want[i][j])
			}
		}
	}
}

// sliceClose ASSERTS |a[i]-b[i]| <= atol + rtol*|b[i]| for every i.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("len: got %d, want %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("[%d]: got %g, want %g", i, a[i], b[i])
		}
	}
}
