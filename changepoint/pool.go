// SPDX-License-Identifier: MIT

package changepoint

import "github.com/sourcegraph/conc/iter"

// Pool runs n independent scoring tasks and returns their results in index
// order. Tasks only read shared state, so implementations need no locking
// beyond their own scheduling.
type Pool interface {
	Map(n int, task func(i int) (float64, error)) ([]float64, error)
}

// ConcPool is a bounded-concurrency Pool backed by sourcegraph/conc.
// MaxGoroutines <= 0 means GOMAXPROCS.
type ConcPool struct {
	MaxGoroutines int
}

// Map implements Pool. Errors from all failed tasks are joined.
func (p ConcPool) Map(n int, task func(i int) (float64, error)) ([]float64, error) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	mapper := iter.Mapper[int, float64]{MaxGoroutines: p.MaxGoroutines}

	return mapper.MapErr(idx, func(i *int) (float64, error) {
		return task(*i)
	})
}

type sequentialPool struct{}

// Sequential returns a Pool that runs tasks one by one on the calling
// goroutine, stopping at the first error.
func Sequential() Pool {
	return sequentialPool{}
}

func (sequentialPool) Map(n int, task func(i int) (float64, error)) ([]float64, error) {
	out := make([]float64, n)
	var err error
	for i := range out {
		if out[i], err = task(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}
