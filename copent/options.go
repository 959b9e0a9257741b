// SPDX-License-Identifier: MIT

package copent

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/copent/distance"
)

// Defaults applied by DefaultOptions.
const (
	DefaultK          = 3
	DefaultMetric     = distance.Chebyshev
	DefaultMode       = distance.Batch
	DefaultMaxRetries = 2
	DefaultRepeats    = 12
)

// Options holds the resolved estimator configuration. Fields are unexported;
// use the With* constructors.
type Options struct {
	k          int
	metric     distance.Metric
	mode       distance.Mode
	seed       uint64
	rng        *rand.Rand
	maxRetries int
	repeats    int

	err error // first invalid option, reported by gatherOptions
}

// Option customizes an estimator call.
type Option func(*Options)

// DefaultOptions returns k=3, Chebyshev, Batch, 2 retries, 12 repeats, seed 0.
func DefaultOptions() Options {
	return Options{
		k:          DefaultK,
		metric:     DefaultMetric,
		mode:       DefaultMode,
		maxRetries: DefaultMaxRetries,
		repeats:    DefaultRepeats,
	}
}

// WithK sets the neighbour order k (k >= 1, and k < N at call time).
func WithK(k int) Option {
	return func(o *Options) { o.k = k }
}

// WithMetric sets the distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *Options) { o.metric = m }
}

// WithMetricName sets the metric by name ("chebychev", "euclidean" and aliases).
// An unknown name is reported as ErrUnknownMetric when the call starts.
func WithMetricName(name string) Option {
	return func(o *Options) {
		m, err := distance.ParseMetric(name)
		if err != nil {
			o.fail(err)
			return
		}
		o.metric = m
	}
}

// WithMode selects Batch or OnDemand neighbour search.
func WithMode(md distance.Mode) Option {
	return func(o *Options) { o.mode = md }
}

// WithSeed fixes the random stream used for perturbation and label jitter.
// Seed 0 is the default stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand supplies the random stream directly. The stream is consumed by the
// call and must not be used concurrently by another goroutine.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.fail(fmt.Errorf("WithRand(nil): %w", ErrInvalidParameter))
			return
		}
		o.rng = r
	}
}

// WithMaxRetries bounds the perturb-and-retry loop on degenerate distances.
// 0 disables retrying.
func WithMaxRetries(n int) Option {
	return func(o *Options) { o.maxRetries = n }
}

// WithRepeats sets the number of jitter repeats averaged by TwoSample.
func WithRepeats(n int) Option {
	return func(o *Options) { o.repeats = n }
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// gatherOptions applies opts over the defaults and validates the result.
// The returned Options always carries a random stream.
func gatherOptions(opts []Option) (*Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch {
	case o.err != nil:
		return nil, o.err
	case o.k < 1:
		return nil, fmt.Errorf("k=%d: %w", o.k, ErrInvalidParameter)
	case o.maxRetries < 0:
		return nil, fmt.Errorf("maxRetries=%d: %w", o.maxRetries, ErrInvalidParameter)
	case o.repeats < 1:
		return nil, fmt.Errorf("repeats=%d: %w", o.repeats, ErrInvalidParameter)
	}
	if err := o.metric.Validate(); err != nil {
		return nil, err
	}
	if err := o.mode.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrInvalidParameter)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}

	return &o, nil
}
