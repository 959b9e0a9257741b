// Package distance computes point-to-point distances and k-th nearest-neighbour
// radii for the kNN entropy estimator.
//
// 🚀 What is here?
//
//	Two metrics, Chebyshev (maximum coordinate difference, the default) and
//	Euclidean, evaluated with gonum's floats.Distance, plus:
//	  • Pairwise:    the full symmetric N×N distance matrix
//	  • KthNeighbor: per-point distance to the k-th nearest neighbour
//
// ✨ Memory modes:
//   - Batch:    build the N×N matrix once, O(N²) memory
//   - OnDemand: recompute one row at a time, O(N) memory
//
// ⚙️ Usage:
//
//	m, err := distance.ParseMetric("chebychev")
//	radii, err := distance.KthNeighbor(x, 3, m, distance.OnDemand)
//
// Performance:
//
//   - Time:   O(N²·d + N²·log N)
//   - Memory: O(N²) (Batch) or O(N) (OnDemand)
package distance
