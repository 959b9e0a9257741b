// Package changepoint locates distribution changes in a sequence with the
// copula-entropy two-sample statistic.
//
// Detect scores every split of a sequence and reports the strongest one above
// a threshold. DetectMultiple applies Detect by binary segmentation, visiting
// segments in the order they are discovered.
//
// Split scoring is the only concurrent part of this module and is delegated
// to a Pool: ConcPool (bounded goroutines via sourcegraph/conc, the default)
// or Sequential. Results are identical for every Pool.
package changepoint
