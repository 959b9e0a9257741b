// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep estimators minimal by delegating nil/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures every matrix reference is non-nil.
//
// Returns ErrNilMatrix tagged with the argument position if any m is nil.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Dense) error {
	for i, m := range ms {
		if m == nil {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil: arg %d", i), ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameRows – Ensures all matrices hold the same number of observations.
//
// Implementation: checks nil first, then compares Rows() against the first matrix.
// Return: nil or wrapped ErrNilMatrix / ErrDimensionMismatch.
// Complexity: O(len(ms)).
func ValidateSameRows(ms ...*Dense) error {
	if err := ValidateNotNil(ms...); err != nil {
		return err
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].r != ms[0].r {
			return validatorErrorf(fmt.Sprintf("ValidateSameRows: arg %d has %d rows, want %d", i, ms[i].r, ms[0].r), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateSameCols – Ensures all matrices describe the same variables (equal Cols()).
// Complexity: O(len(ms)).
func ValidateSameCols(ms ...*Dense) error {
	if err := ValidateNotNil(ms...); err != nil {
		return err
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].c != ms[0].c {
			return validatorErrorf(fmt.Sprintf("ValidateSameCols: arg %d has %d cols, want %d", i, ms[i].c, ms[0].c), ErrDimensionMismatch)
		}
	}

	return nil
}
