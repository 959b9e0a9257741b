// Package copent is a toolkit for information-theoretic dependence analysis
// built on copula entropy.
//
// 🚀 What is here?
//
//	A small stack of packages, each depending only on the ones above it:
//		• matrix/     : dense sample matrices, stacking, covariance log-det
//		• distance/   : Chebyshev & Euclidean metrics, k-th neighbour radii
//		• copula/     : average ranks and the empirical copula
//		• entropy/    : Kozachenko–Leonenko kNN entropy estimator
//		• copent/     : copula entropy, conditional independence, transfer
//		                 entropy, normality and two-sample statistics
//		• changepoint/: single and multiple change-point detection
//		• config/     : YAML + environment configuration for the CLI
//		• cmd/copent  : command-line runner on synthetic workloads
//
// ✨ Why copula entropy?
//
//   - Distribution free – only ranks enter the estimate
//   - Invariant – monotone transforms of a variable change nothing
//   - One quantity – independence, causality and change detection all reduce to it
//
// Quick example:
//
//	x, _ := matrix.NewFromRows(samples)
//	mi, err := copent.CopulaEntropy(x, copent.WithK(3))
//
//	go get github.com/katalvlaran/copent
package copent
