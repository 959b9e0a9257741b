// Package copula builds the empirical copula of a sample matrix.
//
// The empirical copula replaces every value by its normalised rank within its
// column, rank(x[i,j]) / N, so each marginal becomes (discretely) uniform on
// (0, 1] while the dependence structure between columns is kept intact.
//
//   - Rank:      average ranks (ties share the mean of the ranks they span)
//   - Empirical: column-wise Rank / N on a copy of the input
//   - Perturb:   tiny Gaussian jitter that breaks ties in degenerate columns
//
// None of the functions mutate their input.
package copula
