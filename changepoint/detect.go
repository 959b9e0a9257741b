// SPDX-License-Identifier: MIT

package changepoint

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/copent/copent"
	"github.com/katalvlaran/copent/matrix"
)

// NoChangePoint is the Position reported when no split exceeds the threshold.
const NoChangePoint = -1

// Result is the outcome of a single change-point search.
type Result struct {
	// Position is the row where the new regime starts, or NoChangePoint.
	Position int

	// Statistic is Stats[Position], or 0 when Position == NoChangePoint.
	Statistic float64

	// Stats[p] is the two-sample statistic of candidate position p; it has
	// L−1 entries and Stats[0] is always 0.
	Stats []float64
}

// Detect finds the single most significant change point of x (rows are time).
//
// Stage 1 (Validate): options, x non-nil, L >= max(3, k+2).
// Stage 2 (Score):    for split i in [0, L−3], s0 = rows[0..i] and
// s1 = rows[i+2..L−1]; stat[i] = copent.TwoSample(s0, s1). Row i+1 belongs to
// neither half. Splits run on the configured Pool.
// Stage 3 (Select):   Stats = [0, stat...]; report the argmax over positions
// 1..L−2 (first occurrence) when its value exceeds the threshold, so
// Position is never 0, even with a negative threshold.
//
// Every split seeds its own random stream from (seed, i), so the result does
// not depend on the Pool or its scheduling.
//
// Errors:
//   - ErrInvalidParameter for bad options.
//   - ErrNilMatrix (from matrix), ErrInsufficientData for short sequences.
//   - Any copent error raised while scoring a split.
//
// Complexity: O(L · repeats · L²·d) time, spread across the pool.
func Detect(x *matrix.Dense, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("Detect: %w", err)
	}
	if err = matrix.ValidateNotNil(x); err != nil {
		return Result{}, fmt.Errorf("Detect: %w", err)
	}
	res, err := o.detect(x, o.seed)
	if err != nil {
		return Result{}, fmt.Errorf("Detect: %w", err)
	}

	return res, nil
}

// detect runs the search on x with the given base seed.
func (o *Options) detect(x *matrix.Dense, seed uint64) (Result, error) {
	l := x.Rows()
	if l < o.minScorable() {
		return Result{}, fmt.Errorf("L=%d, need %d: %w", l, o.minScorable(), ErrInsufficientData)
	}

	sc := splitScorer{x: x, base: o.estimatorOptions(), seed: seed}
	stat, err := o.pool.Map(l-2, sc.score)
	if err != nil {
		return Result{}, err
	}

	stats := make([]float64, 0, l-1)
	stats = append(stats, 0)
	stats = append(stats, stat...)

	// Stats[0] is padding, not a split; candidates start at position 1.
	best := 1
	for p := 2; p < len(stats); p++ {
		if stats[p] > stats[best] {
			best = p
		}
	}
	if stats[best] <= o.threshold {
		return Result{Position: NoChangePoint, Stats: stats}, nil
	}

	return Result{Position: best, Statistic: stats[best], Stats: stats}, nil
}

// splitScorer is the read-only context shared by every split task.
type splitScorer struct {
	x    *matrix.Dense
	base []copent.Option
	seed uint64
}

// score computes the two-sample statistic of split i.
func (s splitScorer) score(i int) (float64, error) {
	s0, err := s.x.SliceRows(0, i+1)
	if err != nil {
		return 0, fmt.Errorf("split %d: %w", i, err)
	}
	s1, err := s.x.SliceRows(i+2, s.x.Rows())
	if err != nil {
		return 0, fmt.Errorf("split %d: %w", i, err)
	}

	opts := append(slices.Clip(s.base), copent.WithSeed(copent.DeriveSeed(s.seed, uint64(i))))
	v, err := copent.TwoSample(s0, s1, opts...)
	if err != nil {
		return 0, fmt.Errorf("split %d: %w", i, err)
	}

	return v, nil
}
