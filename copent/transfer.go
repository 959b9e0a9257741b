// SPDX-License-Identifier: MIT

package copent

import (
	"fmt"

	"github.com/katalvlaran/copent/matrix"
)

// TransferEntropy estimates the information flowing from the past of y into
// the future of x, conditioned on the past of x. Rows are time steps.
//
// With l = min(rows(x), rows(y)):
//
//	x1 = x[0 : l−lag]   past of x
//	x2 = x[lag : l]     future of x
//	y' = y[0 : l−lag]   past of y
//	TE = ConditionalIndependence(x2, y', x1)
//
// When l < lag+k+1 there is not enough data and the result is exactly 0 with
// a nil error.
//
// Errors:
//   - ErrInvalidParameter for lag < 0.
//   - ErrNilMatrix, plus any CopulaEntropy error.
func TransferEntropy(x, y *matrix.Dense, lag int, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("TransferEntropy: %w", err)
	}
	if err = matrix.ValidateNotNil(x, y); err != nil {
		return 0, fmt.Errorf("TransferEntropy: %w", err)
	}
	if lag < 0 {
		return 0, fmt.Errorf("TransferEntropy: lag=%d: %w", lag, ErrInvalidParameter)
	}

	l := min(x.Rows(), y.Rows())
	if l < lag+o.k+1 {
		return 0, nil
	}

	x1, err := x.SliceRows(0, l-lag)
	if err != nil {
		return 0, fmt.Errorf("TransferEntropy: %w", err)
	}
	x2, err := x.SliceRows(lag, l)
	if err != nil {
		return 0, fmt.Errorf("TransferEntropy: %w", err)
	}
	yp, err := y.SliceRows(0, l-lag)
	if err != nil {
		return 0, fmt.Errorf("TransferEntropy: %w", err)
	}

	te, err := o.conditionalIndependence(x2, yp, x1)
	if err != nil {
		return 0, fmt.Errorf("TransferEntropy: %w", err)
	}

	return te, nil
}
