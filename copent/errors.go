// SPDX-License-Identifier: MIT

package copent

import (
	"errors"

	"github.com/katalvlaran/copent/distance"
	"github.com/katalvlaran/copent/entropy"
	"github.com/katalvlaran/copent/matrix"
)

// Error kinds returned by the estimators. Lower-level sentinels are
// re-exported so callers only need to import this package to match them.
var (
	// ErrInvalidParameter: bad k, lag, repeats, retries or a nil option value.
	ErrInvalidParameter = entropy.ErrInvalidParameter

	// ErrInsufficientData: N <= k, or fewer than 2 observations.
	ErrInsufficientData = entropy.ErrInsufficientData

	// ErrDegenerateDistance: a zero k-th neighbour distance survived every
	// perturbation retry.
	ErrDegenerateDistance = entropy.ErrDegenerateDistance

	// ErrUnknownMetric: metric name or value outside the supported set.
	ErrUnknownMetric = distance.ErrUnknownMetric

	// ErrDimensionMismatch: inputs disagree on row or column count.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix: a nil sample matrix was passed.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrSingularCovariance: the sample covariance is not positive definite.
	ErrSingularCovariance = errors.New("copent: singular covariance")
)
