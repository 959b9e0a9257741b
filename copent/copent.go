// SPDX-License-Identifier: MIT

package copent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/copent/copula"
	"github.com/katalvlaran/copent/entropy"
	"github.com/katalvlaran/copent/matrix"
)

// CopulaEntropy estimates the negative copula entropy of x (rows are
// observations), i.e. the mutual information shared by its columns, in nats.
//
// Stage 1 (Validate): options, x non-nil, N > k.
// Stage 2 (Estimate): −KNN(Empirical(x)).
// Stage 3 (Retry):    on ErrDegenerateDistance re-run on Perturb(x), at most
// MaxRetries times. Every retry perturbs the original x, not the previous
// attempt.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidParameter, ErrUnknownMetric.
//   - ErrInsufficientData (also matches ErrInvalidParameter) when N <= k.
//   - ErrDegenerateDistance when retries are exhausted.
//
// Complexity: O((MaxRetries+1) · (d·N log N + N²·d)).
func CopulaEntropy(x *matrix.Dense, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("CopulaEntropy: %w", err)
	}
	ce, err := o.copulaEntropy(x)
	if err != nil {
		return 0, fmt.Errorf("CopulaEntropy: %w", err)
	}

	return ce, nil
}

// copulaEntropy is CopulaEntropy on resolved options; composite statistics
// call it so they share one random stream.
func (o *Options) copulaEntropy(x *matrix.Dense) (float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return 0, err
	}
	if n := x.Rows(); n <= o.k {
		return 0, fmt.Errorf("k=%d needs N>%d, got %d: %w: %w",
			o.k, o.k, n, ErrInsufficientData, ErrInvalidParameter)
	}

	data := x
	for attempt := 0; ; attempt++ {
		u, err := copula.Empirical(data)
		if err != nil {
			return 0, err
		}
		h, err := entropy.KNN(u, o.k, o.metric, o.mode)
		if err == nil {
			return -h, nil
		}
		if !errors.Is(err, entropy.ErrDegenerateDistance) || attempt >= o.maxRetries {
			return 0, fmt.Errorf("attempt %d: %w", attempt, err)
		}
		if data, err = copula.Perturb(x, o.rng); err != nil {
			return 0, err
		}
	}
}
