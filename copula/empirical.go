package copula

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/copent/matrix"
)

// perturbScale is the relative size of the jitter added to a non-constant
// column: N(0,1) · perturbScale · max|column|.
const perturbScale = 5e-6

// Rank returns the 1-based average ranks of v.
//
// Algorithm Outline:
//  1. Stable argsort a copy of v (gonum floats.ArgsortStable).
//  2. Walk runs of equal sorted values [i, j); every member gets (i+1+j)/2.
//
// Complexity: O(n log n) time, O(n) space.
func Rank(v []float64) []float64 {
	n := len(v)
	sorted := make([]float64, n)
	copy(sorted, v)
	inds := make([]int, n)
	floats.ArgsortStable(sorted, inds)

	ranks := make([]float64, n)
	var i, j, t int
	for i = 0; i < n; i = j {
		j = i + 1
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		avg := float64(i+1+j) / 2
		for t = i; t < j; t++ {
			ranks[inds[t]] = avg
		}
	}

	return ranks
}

// Empirical returns the empirical copula of x: column j holds Rank(x[:,j]) / N.
//
// Errors:
//   - ErrNilMatrix (from matrix) for nil x.
//   - ErrInsufficientData when N < 2.
//
// Complexity: O(d · N log N) time, O(N·d) space.
func Empirical(x *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("Empirical: %w", err)
	}
	n, d := x.Shape()
	if n < 2 {
		return nil, fmt.Errorf("Empirical: N=%d: %w", n, ErrInsufficientData)
	}

	out, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, fmt.Errorf("Empirical: %w", err)
	}
	invN := 1 / float64(n)
	for j := 0; j < d; j++ {
		col, err := x.Col(j)
		if err != nil {
			return nil, fmt.Errorf("Empirical: %w", err)
		}
		u := Rank(col)
		for i := range u {
			u[i] *= invN
		}
		if err = out.SetCol(j, u); err != nil {
			return nil, fmt.Errorf("Empirical: %w", err)
		}
	}

	return out, nil
}

// Perturb returns a jittered copy of x that breaks exact ties.
//
//   - A column whose max absolute value is 0 is replaced by N(0,1) noise.
//   - Every other column gets N(0,1) · 5e-6 · max|column| added.
//
// rng must not be shared across goroutines; a nil rng is an error because a
// silent default stream would correlate independent callers.
//
// Complexity: O(N·d).
func Perturb(x *matrix.Dense, rng *rand.Rand) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("Perturb: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("Perturb: %w", ErrNilRand)
	}
	maxAbs, err := matrix.ColMaxAbs(x)
	if err != nil {
		return nil, fmt.Errorf("Perturb: %w", err)
	}

	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	out := x.Clone()
	err = out.Apply(func(_, j int, v float64) float64 {
		if maxAbs[j] == 0 {
			return noise.Rand()
		}
		return v + noise.Rand()*perturbScale*maxAbs[j]
	})
	if err != nil {
		return nil, fmt.Errorf("Perturb: %w", err)
	}

	return out, nil
}
