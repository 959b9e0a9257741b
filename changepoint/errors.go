// SPDX-License-Identifier: MIT

package changepoint

import "github.com/katalvlaran/copent/copent"

// Error kinds, shared with copent so errors.Is matches across both packages.
var (
	// ErrInvalidParameter: non-positive repeats, k, maxPoints or
	// minSegmentLength, a NaN threshold, a nil pool or negative worker count.
	ErrInvalidParameter = copent.ErrInvalidParameter

	// ErrInsufficientData: the sequence is too short to score any split.
	ErrInsufficientData = copent.ErrInsufficientData
)
