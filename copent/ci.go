// SPDX-License-Identifier: MIT

package copent

import (
	"fmt"

	"github.com/katalvlaran/copent/matrix"
)

// ConditionalIndependence estimates the conditional mutual information
// I(x; y | z) through three copula entropies:
//
//	CI = CE([x|y|z]) − CE([y|z]) − CE([x|z])
//
// x, y and z are N×dx, N×dy and N×dz with a shared row count; it is close to
// 0 when x and y are independent given z.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, plus any CopulaEntropy error.
func ConditionalIndependence(x, y, z *matrix.Dense, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("ConditionalIndependence: %w", err)
	}
	ci, err := o.conditionalIndependence(x, y, z)
	if err != nil {
		return 0, fmt.Errorf("ConditionalIndependence: %w", err)
	}

	return ci, nil
}

func (o *Options) conditionalIndependence(x, y, z *matrix.Dense) (float64, error) {
	if err := matrix.ValidateSameRows(x, y, z); err != nil {
		return 0, err
	}

	xyz, err := matrix.HStack(x, y, z)
	if err != nil {
		return 0, err
	}
	yz, err := matrix.HStack(y, z)
	if err != nil {
		return 0, err
	}
	xz, err := matrix.HStack(x, z)
	if err != nil {
		return 0, err
	}

	var h [3]float64
	for i, m := range []*matrix.Dense{xyz, yz, xz} {
		if h[i], err = o.copulaEntropy(m); err != nil {
			return 0, err
		}
	}

	return h[0] - h[1] - h[2], nil
}
