// SPDX-License-Identifier: MIT

package copent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/copent/matrix"
)

// MultivariateNormality returns −½·log det(cov(x)) − CE(x).
//
// For Gaussian data the copula part of the entropy is fully explained by the
// covariance, so the statistic stays near the Gaussian reference; departures
// from normality move it away.
//
// Errors:
//   - ErrInvalidParameter when x has fewer than 2 columns.
//   - ErrSingularCovariance when cov(x) is not positive definite.
//   - ErrNilMatrix, ErrInsufficientData, plus any CopulaEntropy error.
//
// Complexity: O(N·d² + d³) for the covariance plus one CopulaEntropy call.
func MultivariateNormality(x *matrix.Dense, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("MultivariateNormality: %w", err)
	}
	if err = matrix.ValidateNotNil(x); err != nil {
		return 0, fmt.Errorf("MultivariateNormality: %w", err)
	}
	n, d := x.Shape()
	if d < 2 {
		return 0, fmt.Errorf("MultivariateNormality: %d column(s), need 2: %w", d, ErrInvalidParameter)
	}
	if n <= o.k {
		return 0, fmt.Errorf("MultivariateNormality: k=%d needs N>%d, got %d: %w: %w",
			o.k, o.k, n, ErrInsufficientData, ErrInvalidParameter)
	}

	logDet, err := matrix.LogDetCovariance(x)
	if errors.Is(err, matrix.ErrSingular) {
		return 0, fmt.Errorf("MultivariateNormality: %w: %w", err, ErrSingularCovariance)
	}
	if err != nil {
		return 0, fmt.Errorf("MultivariateNormality: %w", err)
	}

	ce, err := o.copulaEntropy(x)
	if err != nil {
		return 0, fmt.Errorf("MultivariateNormality: %w", err)
	}

	return -0.5*logDet - ce, nil
}
