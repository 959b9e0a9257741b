// Package simulate generates the synthetic workloads used to exercise the
// estimators: correlated Gaussians with a known mutual information, a coupled
// autoregressive pair, mean-shifted samples and concatenated Gaussian blocks.
//
// Every generator is deterministic in its seed.
package simulate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/copent/matrix"
)

// ErrInvalidParameter is returned for non-positive sizes, |rho| >= 1 or
// mismatched block descriptions.
var ErrInvalidParameter = errors.New("simulate: invalid parameter")

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, ^seed))
}

// GaussianMI is the mutual information −½·log(1−ρ²) of a bivariate normal
// with correlation rho, in nats.
func GaussianMI(rho float64) float64 {
	return -0.5 * math.Log(1-rho*rho)
}

// GaussianPair draws n rows from a bivariate normal with unit variances and
// correlation rho.
func GaussianPair(n int, rho float64, seed uint64) (*matrix.Dense, error) {
	if n < 1 || math.Abs(rho) >= 1 {
		return nil, fmt.Errorf("GaussianPair: n=%d rho=%g: %w", n, rho, ErrInvalidParameter)
	}
	sigma := mat.NewSymDense(2, []float64{1, rho, rho, 1})
	dist, ok := distmv.NewNormal([]float64{0, 0}, sigma, newRand(seed))
	if !ok {
		return nil, fmt.Errorf("GaussianPair: rho=%g: %w", rho, ErrInvalidParameter)
	}

	return draw(dist, n)
}

// Gaussian draws n rows from N(mean·1, I_d).
func Gaussian(n, d int, mean float64, seed uint64) (*matrix.Dense, error) {
	return gaussian(n, d, mean, newRand(seed))
}

func gaussian(n, d int, mean float64, src rand.Source) (*matrix.Dense, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("Gaussian: n=%d d=%d: %w", n, d, ErrInvalidParameter)
	}
	mu := make([]float64, d)
	diag := make([]float64, d)
	for j := range mu {
		mu[j] = mean
		diag[j] = 1
	}
	dist, ok := distmv.NewNormal(mu, mat.NewDiagDense(d, diag), src)
	if !ok {
		return nil, fmt.Errorf("Gaussian: %w", ErrInvalidParameter)
	}

	return draw(dist, n)
}

// draw fills an n×dim gonum matrix row by row and converts it.
func draw(dist *distmv.Normal, n int) (*matrix.Dense, error) {
	samples := mat.NewDense(n, dist.Dim(), nil)
	for i := 0; i < n; i++ {
		dist.Rand(samples.RawRowView(i))
	}

	return matrix.FromGonum(samples)
}

// ShiftedPair returns s0 ~ N(0, I_d) and s1 ~ N(shift·1, I_d), n rows each.
func ShiftedPair(n, d int, shift float64, seed uint64) (s0, s1 *matrix.Dense, err error) {
	rng := newRand(seed)
	if s0, err = gaussian(n, d, 0, rng); err != nil {
		return nil, nil, fmt.Errorf("ShiftedPair: %w", err)
	}
	if s1, err = gaussian(n, d, shift, rng); err != nil {
		return nil, nil, fmt.Errorf("ShiftedPair: %w", err)
	}

	return s0, s1, nil
}

// Blocks concatenates len(sizes) Gaussian blocks of dimension d; block b has
// sizes[b] rows drawn from N(means[b]·1, I_d). The block boundaries are the
// prefix sums of sizes.
func Blocks(sizes []int, means []float64, d int, seed uint64) (*matrix.Dense, error) {
	if len(sizes) == 0 || len(sizes) != len(means) {
		return nil, fmt.Errorf("Blocks: %d sizes, %d means: %w", len(sizes), len(means), ErrInvalidParameter)
	}
	rng := newRand(seed)
	parts := make([]*matrix.Dense, len(sizes))
	var err error
	for b := range sizes {
		if parts[b], err = gaussian(sizes[b], d, means[b], rng); err != nil {
			return nil, fmt.Errorf("Blocks: block %d: %w", b, err)
		}
	}

	return matrix.VStack(parts...)
}

// Chain draws z ~ N(0,1), x = z + noise·e1 and y = z + noise·e2, n rows
// each: x and y are dependent, but independent given z.
func Chain(n int, noise float64, seed uint64) (x, y, z *matrix.Dense, err error) {
	if n < 1 {
		return nil, nil, nil, fmt.Errorf("Chain: n=%d: %w", n, ErrInvalidParameter)
	}
	g := distuv.Normal{Mu: 0, Sigma: 1, Src: newRand(seed)}
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range zs {
		zs[i] = g.Rand()
		xs[i] = zs[i] + noise*g.Rand()
		ys[i] = zs[i] + noise*g.Rand()
	}

	if x, err = matrix.NewColumn(xs); err != nil {
		return nil, nil, nil, fmt.Errorf("Chain: %w", err)
	}
	if y, err = matrix.NewColumn(ys); err != nil {
		return nil, nil, nil, fmt.Errorf("Chain: %w", err)
	}
	if z, err = matrix.NewColumn(zs); err != nil {
		return nil, nil, nil, fmt.Errorf("Chain: %w", err)
	}

	return x, y, z, nil
}

// CoupledAR simulates n steps of
//
//	y_t = e_t
//	x_t = a·x_{t−1} + c·y_{t−1} + u_t
//
// with e, u ~ N(0,1), a = 0.5 and c = coupling. Information flows from y to x
// only, so TransferEntropy(x, y, 1) > 0 ≈ TransferEntropy(y, x, 1) for c != 0.
func CoupledAR(n int, coupling float64, seed uint64) (x, y *matrix.Dense, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("CoupledAR: n=%d: %w", n, ErrInvalidParameter)
	}
	const a = 0.5
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: newRand(seed)}

	xs := make([]float64, n)
	ys := make([]float64, n)
	ys[0] = noise.Rand()
	xs[0] = noise.Rand()
	for t := 1; t < n; t++ {
		ys[t] = noise.Rand()
		xs[t] = a*xs[t-1] + coupling*ys[t-1] + noise.Rand()
	}

	if x, err = matrix.NewColumn(xs); err != nil {
		return nil, nil, fmt.Errorf("CoupledAR: %w", err)
	}
	if y, err = matrix.NewColumn(ys); err != nil {
		return nil, nil, fmt.Errorf("CoupledAR: %w", err)
	}

	return x, y, nil
}
