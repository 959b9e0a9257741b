// Package entropy implements the Kraskov-Stögbauer-Grassberger k-nearest-
// neighbour estimator of differential entropy.
//
// For N points in d dimensions, with δ_i the distance from point i to its
// k-th nearest neighbour:
//
//	H = ψ(N) − ψ(k) + log(c_d) + (d/N) · Σ_i log(2·δ_i)
//
// where ψ is the digamma function and c_d the unit-ball volume of the metric
// (log c_d = 0 for Chebyshev). The result is in nats.
package entropy
