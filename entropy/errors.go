// SPDX-License-Identifier: MIT

package entropy

import "errors"

// Sentinel errors shared by every estimator built on KNN. Higher-level
// packages re-export them so callers can match with errors.Is at any layer.
var (
	// ErrInvalidParameter is returned for an out-of-range argument (k, lag, ...).
	ErrInvalidParameter = errors.New("entropy: invalid parameter")

	// ErrInsufficientData is returned when there are too few observations for
	// the requested neighbour order.
	ErrInsufficientData = errors.New("entropy: insufficient data")

	// ErrDegenerateDistance is returned when some point has its k-th
	// neighbour at distance 0, making log(2·δ) undefined.
	ErrDegenerateDistance = errors.New("entropy: zero k-th neighbour distance")
)
