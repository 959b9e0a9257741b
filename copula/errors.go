package copula

import "errors"

var (
	// ErrInsufficientData indicates fewer than two observations, for which
	// ranks carry no information.
	ErrInsufficientData = errors.New("copula: at least 2 observations required")

	// ErrNilRand indicates Perturb was called without a random source.
	ErrNilRand = errors.New("copula: nil random source")
)
