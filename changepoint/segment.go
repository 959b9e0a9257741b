// SPDX-License-Identifier: MIT

package changepoint

import (
	"fmt"

	"github.com/katalvlaran/copent/copent"
	"github.com/katalvlaran/copent/matrix"
)

// Segment is the half-open row range [Start, End).
type Segment struct {
	Start, End int
}

// Len returns End − Start.
func (s Segment) Len() int { return s.End - s.Start }

// MultiResult lists change points in discovery order (not sorted).
type MultiResult struct {
	Positions  []int
	Statistics []float64
}

// DetectMultiple finds up to MaxPoints change points by binary segmentation.
//
// Algorithm Outline:
//  1. queue = [[0, L)].
//  2. Pop the oldest segment [s, e); run the single search on its rows.
//  3. On a point p: record s+p, then enqueue [s, s+p) if p > MinSegmentLength
//     and [s+p, e) if e−s−p > MinSegmentLength.
//  4. Stop after MaxPoints points or when the queue is empty.
//
// Sub-segments too short to score are skipped; a whole sequence that is too
// short is an ErrInsufficientData error, as in Detect.
//
// Each segment derives its base seed from (seed, s, e).
func DetectMultiple(x *matrix.Dense, opts ...Option) (MultiResult, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return MultiResult{}, fmt.Errorf("DetectMultiple: %w", err)
	}
	if err = matrix.ValidateNotNil(x); err != nil {
		return MultiResult{}, fmt.Errorf("DetectMultiple: %w", err)
	}
	if l := x.Rows(); l < o.minScorable() {
		return MultiResult{}, fmt.Errorf("DetectMultiple: L=%d, need %d: %w", l, o.minScorable(), ErrInsufficientData)
	}

	var out MultiResult
	queue := []Segment{{Start: 0, End: x.Rows()}}
	for len(queue) > 0 && len(out.Positions) < o.maxPoints {
		seg := queue[0]
		queue = queue[1:]

		if seg.Len() < o.minScorable() {
			o.logger.Debug("segment skipped", "start", seg.Start, "end", seg.End)
			continue
		}
		rows, err := x.SliceRows(seg.Start, seg.End)
		if err != nil {
			return MultiResult{}, fmt.Errorf("DetectMultiple: %w", err)
		}
		res, err := o.detect(rows, segmentSeed(o.seed, seg))
		if err != nil {
			return MultiResult{}, fmt.Errorf("DetectMultiple: segment [%d,%d): %w", seg.Start, seg.End, err)
		}
		o.logger.Debug("segment scored",
			"start", seg.Start, "end", seg.End,
			"position", res.Position, "statistic", res.Statistic)
		if res.Position == NoChangePoint {
			continue
		}

		p := res.Position
		out.Positions = append(out.Positions, seg.Start+p)
		out.Statistics = append(out.Statistics, res.Statistic)

		if p > o.minSegLen {
			queue = append(queue, Segment{Start: seg.Start, End: seg.Start + p})
		}
		if seg.Len()-p > o.minSegLen {
			queue = append(queue, Segment{Start: seg.Start + p, End: seg.End})
		}
	}

	return out, nil
}

// segmentSeed gives every segment its own stream family.
func segmentSeed(seed uint64, seg Segment) uint64 {
	return copent.DeriveSeed(copent.DeriveSeed(seed, uint64(seg.Start)), uint64(seg.End))
}
