package distance

// Metric selects the point-to-point distance.
//
//   - Chebyshev: max_i |p_i − q_i| (L∞, "maximum distance"). Its unit ball is
//     the cube [−1,1]^d, whose normalised volume constant is cd = 1.
//     This is the zero value and the estimator default.
//
//   - Euclidean: sqrt(Σ_i (p_i − q_i)²) (L2). Unit-ball constant
//     cd = π^(d/2) / (2^d · Γ(1 + d/2)).
type Metric int

const (
	// Chebyshev is the maximum-coordinate (L∞) metric.
	Chebyshev Metric = iota

	// Euclidean is the L2 metric.
	Euclidean
)

// Mode controls how neighbour distances are materialised.
//
//   - Batch: build the full N×N distance matrix once (upper triangle
//     computed, lower mirrored). Memory: O(N²).
//
//   - OnDemand: recompute one row of distances at a time into a reusable
//     buffer. Memory: O(N); every distance is evaluated twice.
//
// Both modes yield bit-identical neighbour distances.
type Mode int

const (
	// Batch mode: full pairwise matrix, O(N²) memory.
	Batch Mode = iota

	// OnDemand mode: per-row recomputation, O(N) memory.
	OnDemand
)
