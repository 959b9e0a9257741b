// Package copent estimates copula entropy and the statistics built on it.
//
// 🚀 What is copula entropy?
//
//	The copula of a random vector keeps its dependence structure and drops its
//	marginals. Its (negative) entropy equals the mutual information between
//	the components, so it is zero for independent variables, grows with
//	dependence, and is unchanged by strictly increasing transforms of any
//	single variable.
//
// ✨ Estimators:
//   - CopulaEntropy:           −H(copula) via ranks + kNN entropy
//   - ConditionalIndependence: I(x; y | z) = CE(xyz) − CE(yz) − CE(xz)
//   - TransferEntropy:         directed flow from y's past into x's future
//   - MultivariateNormality:   −½·log det cov − CE
//   - TwoSample:               label-information test between two samples
//
// ⚙️ Options:
//
//	WithK(3), WithMetric(distance.Chebyshev), WithMode(distance.Batch),
//	WithSeed(0), WithMaxRetries(2), WithRepeats(12)
//
// Randomness enters only through the degenerate-distance perturbation and
// the two-sample label jitter; both draw from one seeded stream per call, so
// results are reproducible.
//
// 🧩 Usage:
//
//	ce, err := copent.CopulaEntropy(x, copent.WithK(3))
//	te, err := copent.TransferEntropy(x, y, 1)
//
// Performance:
//
//   - Time:   O(N²·d) per copula-entropy evaluation
//   - Memory: O(N²) (Batch) or O(N·d) (OnDemand)
package copent
