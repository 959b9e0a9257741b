// SPDX-License-Identifier: MIT

package copent

import "math/rand/v2"

// Random streams for the perturbation retry and the two-sample label jitter.
//
// Policy:
//   - seed==0 ⇒ defaultSeed, so the zero Options value is reproducible.
//   - A *rand.Rand is NOT goroutine-safe; every call resolves its own stream
//     unless the caller supplies one with WithRand.
//   - Parallel callers derive independent streams with DeriveSeed.

// defaultSeed replaces a zero seed.
const defaultSeed uint64 = 1

// rngFromSeed returns a PCG stream for seed (seed==0 ⇒ defaultSeed).
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewPCG(s, DeriveSeed(s, 0)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer. Small input changes flip about half of the
// output bits, so consecutive stream ids give unrelated streams.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
