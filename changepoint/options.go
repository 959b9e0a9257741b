// SPDX-License-Identifier: MIT

package changepoint

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/copent/copent"
	"github.com/katalvlaran/copent/distance"
)

// Defaults applied by DefaultOptions.
const (
	DefaultThreshold        = 0.13
	DefaultRepeats          = 30
	DefaultMaxPoints        = 5
	DefaultMinSegmentLength = 10
	DefaultK                = copent.DefaultK
	DefaultMetric           = copent.DefaultMetric
)

// Options configures Detect and DetectMultiple.
type Options struct {
	threshold float64
	repeats   int
	k         int
	metric    distance.Metric
	mode      distance.Mode
	seed      uint64
	maxPoints int
	minSegLen int
	pool      Pool
	logger    *slog.Logger

	err error
}

// Option customizes a change-point search.
type Option func(*Options)

// DefaultOptions: threshold 0.13, 30 repeats, k=3, Chebyshev, Batch,
// 5 points, minimum segment length 10, ConcPool with GOMAXPROCS workers,
// discarded logs.
func DefaultOptions() Options {
	return Options{
		threshold: DefaultThreshold,
		repeats:   DefaultRepeats,
		k:         DefaultK,
		metric:    DefaultMetric,
		mode:      copent.DefaultMode,
		maxPoints: DefaultMaxPoints,
		minSegLen: DefaultMinSegmentLength,
		pool:      ConcPool{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithThreshold sets the minimum two-sample statistic that counts as a change.
func WithThreshold(v float64) Option {
	return func(o *Options) { o.threshold = v }
}

// WithRepeats sets the two-sample jitter repeats per split.
func WithRepeats(n int) Option {
	return func(o *Options) { o.repeats = n }
}

// WithK sets the neighbour order of the underlying estimator.
func WithK(k int) Option {
	return func(o *Options) { o.k = k }
}

// WithMetric sets the distance metric of the underlying estimator.
func WithMetric(m distance.Metric) Option {
	return func(o *Options) { o.metric = m }
}

// WithMode selects Batch or OnDemand neighbour search.
func WithMode(md distance.Mode) Option {
	return func(o *Options) { o.mode = md }
}

// WithSeed fixes the base seed; each split derives its own stream from it.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithMaxPoints bounds the number of change points DetectMultiple reports.
func WithMaxPoints(n int) Option {
	return func(o *Options) { o.maxPoints = n }
}

// WithMinSegmentLength sets the length a sub-segment must exceed to be searched.
func WithMinSegmentLength(n int) Option {
	return func(o *Options) { o.minSegLen = n }
}

// WithPool replaces the worker pool used for split scoring.
func WithPool(p Pool) Option {
	return func(o *Options) {
		if p == nil {
			o.fail(fmt.Errorf("WithPool(nil): %w", ErrInvalidParameter))
			return
		}
		o.pool = p
	}
}

// WithWorkers uses a ConcPool with n goroutines (0 = GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("WithWorkers(%d): %w", n, ErrInvalidParameter))
			return
		}
		o.pool = ConcPool{MaxGoroutines: n}
	}
}

// WithLogger receives per-segment debug records. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

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
	case math.IsNaN(o.threshold):
		return nil, fmt.Errorf("threshold NaN: %w", ErrInvalidParameter)
	case o.repeats < 1:
		return nil, fmt.Errorf("repeats=%d: %w", o.repeats, ErrInvalidParameter)
	case o.k < 1:
		return nil, fmt.Errorf("k=%d: %w", o.k, ErrInvalidParameter)
	case o.maxPoints < 1:
		return nil, fmt.Errorf("maxPoints=%d: %w", o.maxPoints, ErrInvalidParameter)
	case o.minSegLen < 1:
		return nil, fmt.Errorf("minSegmentLength=%d: %w", o.minSegLen, ErrInvalidParameter)
	}
	if err := o.metric.Validate(); err != nil {
		return nil, err
	}
	if err := o.mode.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrInvalidParameter)
	}

	return &o, nil
}

// estimatorOptions returns the copent options shared by every split.
func (o *Options) estimatorOptions() []copent.Option {
	return []copent.Option{
		copent.WithK(o.k),
		copent.WithMetric(o.metric),
		copent.WithMode(o.mode),
		copent.WithRepeats(o.repeats),
	}
}

// minScorable is the shortest sequence with at least one split whose two
// halves together hold more than k rows.
func (o *Options) minScorable() int {
	return max(3, o.k+2)
}
