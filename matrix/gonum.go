// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Gonum returns a gonum *mat.Dense sharing the backing buffer (no copy).
// Writes through the view are visible in m; callers in this module only read.
// Complexity: O(1).
func (m *Dense) Gonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty matrix.
//   - ErrNaNInf for non-finite entries.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(a mat.Matrix) (*Dense, error) {
	r, c := a.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, a.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
