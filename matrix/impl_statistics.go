// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the estimators need (column max-abs,
//     sample covariance, covariance log-determinant).
//   - Delegate the linear algebra to gonum (stat.CovarianceMatrix, mat.Cholesky)
//     through the zero-copy Gonum() view.
//
// Exposed API:
//   - ColMaxAbs(X)        -> []float64       // max |X[i,j]| per column
//   - Covariance(X)       -> (*Dense, error) // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - LogDetCovariance(X) -> (float64, error) // log det Cov(X), ErrSingular if not positive definite or ill-conditioned
//
// Determinism & Performance:
//   - Fixed i→j traversal for explicit loops.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColMaxAbs   = "ColMaxAbs"
	opCovariance  = "Covariance"
	opLogDetCovar = "LogDetCovariance"
)

// ColMaxAbs returns max_i |X[i,j]| for every column j.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColMaxAbs(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opColMaxAbs, err)
	}
	out := make([]float64, X.c)

	var i, j int
	var a float64
	for i = 0; i < X.r; i++ {
		base := i * X.c // cache row base offset
		for j = 0; j < X.c; j++ {
			a = math.Abs(X.data[base+j])
			if a > out[j] {
				out[j] = a
			}
		}
	}

	return out, nil
}

// sampleCovariance computes the c×c sample covariance with gonum.
// Requires r>=2; the caller validates.
func sampleCovariance(X *Dense) *mat.SymDense {
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, X.Gonum(), nil)

	return &cov
}

// Covariance computes the sample covariance of the columns of X.
//
// Implementation:
//   - Stage 1: Validate X, require r>=2.
//   - Stage 2: gonum stat.CovarianceMatrix over the zero-copy view.
//   - Stage 3: Copy the symmetric result into a new Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func Covariance(X *Dense) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opCovariance, err)
	}
	// Sample covariance requires at least two observations.
	if X.r < 2 {
		return nil, fmt.Errorf("%s: %d rows: %w", opCovariance, X.r, ErrDimensionMismatch)
	}

	cov := sampleCovariance(X)
	out := &Dense{r: X.c, c: X.c, data: make([]float64, X.c*X.c)}
	var i, j int
	for i = 0; i < X.c; i++ {
		for j = 0; j < X.c; j++ {
			out.data[i*X.c+j] = cov.At(i, j)
		}
	}

	return out, nil
}

// maxCovarianceCond is the largest condition number accepted by
// LogDetCovariance. Collinear columns leave a tiny positive pivot after
// roundoff, so a successful factorization alone does not prove full rank.
const maxCovarianceCond = 1e12

// LogDetCovariance returns log(det(Cov(X))) using a Cholesky factorization.
// MAIN DESCRIPTION:
//   - The covariance is rejected as singular when the factorization fails
//     (zero or negative pivot) or when its condition number exceeds
//     maxCovarianceCond (rank deficiency hidden by roundoff).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), ErrSingular.
//
// Complexity:
//   - Time O(r*c^2 + c^3), Space O(c^2).
func LogDetCovariance(X *Dense) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, fmt.Errorf("%s: %w", opLogDetCovar, err)
	}
	if X.r < 2 {
		return 0, fmt.Errorf("%s: %d rows: %w", opLogDetCovar, X.r, ErrDimensionMismatch)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sampleCovariance(X)); !ok {
		return 0, fmt.Errorf("%s: %w", opLogDetCovar, ErrSingular)
	}
	if cond := chol.Cond(); cond > maxCovarianceCond {
		return 0, fmt.Errorf("%s: condition number %.3g: %w", opLogDetCovar, cond, ErrSingular)
	}
	logDet := chol.LogDet()
	if math.IsNaN(logDet) || math.IsInf(logDet, 0) {
		return 0, fmt.Errorf("%s: log det %v: %w", opLogDetCovar, logDet, ErrSingular)
	}

	return logDet, nil
}
