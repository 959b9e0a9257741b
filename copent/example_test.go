// SPDX-License-Identifier: MIT

package copent_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/copent/copent"
	"github.com/katalvlaran/copent/matrix"
)

// ExampleTransferEntropy shows the short-series rule: with fewer than
// lag+k+1 rows there is nothing to estimate and the result is exactly 0.
func ExampleTransferEntropy() {
	x, _ := matrix.NewColumn([]float64{0.1, 0.4, 0.2, 0.9})
	y, _ := matrix.NewColumn([]float64{1.0, 0.3, 0.7, 0.5})

	te, err := copent.TransferEntropy(x, y, 1, copent.WithK(3))
	fmt.Println(te, err)
	// Output:
	// 0 <nil>
}

// ExampleCopulaEntropy_insufficientData shows that k >= N is both an
// insufficient-data and an invalid-parameter error.
func ExampleCopulaEntropy_insufficientData() {
	x, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 5}, {10, 10}})

	_, err := copent.CopulaEntropy(x, copent.WithK(3))
	fmt.Println(errors.Is(err, copent.ErrInsufficientData), errors.Is(err, copent.ErrInvalidParameter))
	// Output:
	// true true
}

// ExampleCopulaEntropy_monotone shows invariance under monotone transforms.
func ExampleCopulaEntropy_monotone() {
	x, _ := matrix.NewFromRows([][]float64{
		{0.3, 1.2}, {1.1, 0.4}, {2.5, 2.9}, {0.7, 0.1}, {1.9, 2.2}, {3.3, 2.6},
	})
	y := x.Clone()
	_ = y.Apply(func(_, _ int, v float64) float64 { return v*v*v + 7 })

	a, _ := copent.CopulaEntropy(x, copent.WithK(1))
	b, _ := copent.CopulaEntropy(y, copent.WithK(1))
	fmt.Println(a == b)
	// Output:
	// true
}
