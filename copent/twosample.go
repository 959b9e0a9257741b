// SPDX-License-Identifier: MIT

package copent

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/copent/matrix"
)

// Label jitter widths: small enough never to reorder the 1/2 groups, large
// enough to leave no ties within a group.
const (
	trueLabelJitter = 1e-7
	nullLabelJitter = 1e-6
)

// TwoSample measures how much a planted sample label tells about the data.
//
// Algorithm Outline:
//  1. x = VStack(s0, s1).
//  2. Repeat n times (WithRepeats, default 12):
//     true labels  = 1 for s0 rows, 2 for s1 rows, plus U(0, 1e-7);
//     null labels  = 1 for every row, plus U(0, 1e-6);
//     diff_r       = CE([x | true]) − CE([x | null]).
//  3. Return mean(diff).
//
// Identically distributed samples give values near 0; differing ones give
// systematically positive values.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column counts differ).
//   - ErrInsufficientData when N0+N1 <= k, plus any CopulaEntropy error.
//
// Complexity: O(n · CopulaEntropy(N0+N1, d+1)).
func TwoSample(s0, s1 *matrix.Dense, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("TwoSample: %w", err)
	}
	ts, err := o.twoSample(s0, s1)
	if err != nil {
		return 0, fmt.Errorf("TwoSample: %w", err)
	}

	return ts, nil
}

func (o *Options) twoSample(s0, s1 *matrix.Dense) (float64, error) {
	x, err := matrix.VStack(s0, s1)
	if err != nil {
		return 0, err
	}
	n0, n := s0.Rows(), x.Rows()

	jitTrue := distuv.Uniform{Min: 0, Max: trueLabelJitter, Src: o.rng}
	jitNull := distuv.Uniform{Min: 0, Max: nullLabelJitter, Src: o.rng}

	trueLab := make([]float64, n)
	nullLab := make([]float64, n)
	diffs := make([]float64, o.repeats)

	var i int
	for r := range diffs {
		for i = 0; i < n; i++ {
			base := 1.0
			if i >= n0 {
				base = 2
			}
			trueLab[i] = base + jitTrue.Rand()
		}
		for i = 0; i < n; i++ {
			nullLab[i] = 1 + jitNull.Rand()
		}

		ceTrue, err := o.labelled(x, trueLab)
		if err != nil {
			return 0, fmt.Errorf("repeat %d: %w", r, err)
		}
		ceNull, err := o.labelled(x, nullLab)
		if err != nil {
			return 0, fmt.Errorf("repeat %d: %w", r, err)
		}
		diffs[r] = ceTrue - ceNull
	}

	return stat.Mean(diffs, nil), nil
}

// labelled returns CE([x | labels]).
func (o *Options) labelled(x *matrix.Dense, labels []float64) (float64, error) {
	col, err := matrix.NewColumn(labels)
	if err != nil {
		return 0, err
	}
	xl, err := matrix.HStack(x, col)
	if err != nil {
		return 0, err
	}

	return o.copulaEntropy(xl)
}
