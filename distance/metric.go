package distance

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// metricNames maps accepted (lower-case) names to metrics. "chebychev" is the
// canonical spelling used throughout configuration; the others are aliases.
var metricNames = map[string]Metric{
	"chebychev": Chebyshev,
	"chebyshev": Chebyshev,
	"maximum":   Chebyshev,
	"max":       Chebyshev,
	"euclidean": Euclidean,
	"l2":        Euclidean,
}

// ParseMetric resolves a metric name (case-insensitive, surrounding spaces ignored).
//
// Errors:
//   - ErrUnknownMetric for any other name.
func ParseMetric(name string) (Metric, error) {
	m, ok := metricNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}

	return m, nil
}

// String returns the canonical metric name.
func (m Metric) String() string {
	switch m {
	case Chebyshev:
		return "chebychev"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Validate reports ErrUnknownMetric for values outside the enumeration.
func (m Metric) Validate() error {
	if m != Chebyshev && m != Euclidean {
		return fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}

	return nil
}

// Between returns the distance between p and q under m.
// p and q must have equal length (gonum panics otherwise); callers pass rows
// of the same matrix.
//
// Complexity: O(d).
func (m Metric) Between(p, q []float64) float64 {
	if m == Euclidean {
		return floats.Distance(p, q, 2)
	}

	return floats.Distance(p, q, math.Inf(1))
}

// UnitBallLogVolume returns log(cd), the log of the normalised unit-ball volume
// in d dimensions: 0 for Chebyshev, (d/2)·log π − d·log 2 − log Γ(1 + d/2)
// for Euclidean.
func (m Metric) UnitBallLogVolume(d int) float64 {
	if m != Euclidean {
		return 0
	}
	fd := float64(d)
	lg, _ := math.Lgamma(1 + fd/2)

	return fd/2*math.Log(math.Pi) - fd*math.Ln2 - lg
}

// String returns the mode name.
func (md Mode) String() string {
	switch md {
	case Batch:
		return "batch"
	case OnDemand:
		return "on-demand"
	default:
		return fmt.Sprintf("Mode(%d)", int(md))
	}
}

// ParseMode resolves "batch" or "on-demand" (also "ondemand", "pointwise").
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "batch", "":
		return Batch, nil
	case "on-demand", "ondemand", "pointwise":
		return OnDemand, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Validate reports ErrUnknownMode for values outside the enumeration.
func (md Mode) Validate() error {
	if md != Batch && md != OnDemand {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(md))
	}

	return nil
}
