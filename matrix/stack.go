// SPDX-License-Identifier: MIT

// Package matrix - horizontal/vertical concatenation.
//
// Purpose:
//   - HStack joins variables of the same observations ([x | y | z]).
//   - VStack joins observations of the same variables (s0 over s1).
//
// Both always allocate; inputs are never aliased by the result.

package matrix

import "fmt"

const (
	opHStack = "HStack"
	opVStack = "VStack"
)

// HStack concatenates matrices column-wise.
//
// Implementation:
//   - Stage 1: Validate non-nil and equal row counts.
//   - Stage 2: Allocate r×Σc and copy each source row segment in argument order.
//
// Errors:
//   - ErrInvalidDimensions (no arguments), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*Σc), Space O(r*Σc).
func HStack(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", opHStack, ErrInvalidDimensions)
	}
	if err := ValidateSameRows(ms...); err != nil {
		return nil, fmt.Errorf("%s: %w", opHStack, err)
	}

	r := ms[0].r
	c := 0
	for _, m := range ms {
		c += m.c
	}
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, off int
	for i = 0; i < r; i++ {
		off = i * c
		for _, m := range ms {
			copy(out.data[off:off+m.c], m.data[i*m.c:(i+1)*m.c])
			off += m.c
		}
	}

	return out, nil
}

// VStack concatenates matrices row-wise (observations of ms[0] first).
//
// Errors:
//   - ErrInvalidDimensions (no arguments), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(Σr*c), Space O(Σr*c).
func VStack(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", opVStack, ErrInvalidDimensions)
	}
	if err := ValidateSameCols(ms...); err != nil {
		return nil, fmt.Errorf("%s: %w", opVStack, err)
	}

	c := ms[0].c
	r := 0
	for _, m := range ms {
		r += m.r
	}
	data := make([]float64, 0, r*c)
	for _, m := range ms {
		data = append(data, m.data...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}
