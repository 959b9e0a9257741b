package distance

import "errors"

var (
	// ErrUnknownMetric indicates a metric value or name outside {euclidean, chebychev}.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrUnknownMode indicates a Mode outside {Batch, OnDemand}.
	ErrUnknownMode = errors.New("distance: unknown mode")

	// ErrNeighborOrder indicates k is outside [1, N−1] for an N-point cloud.
	ErrNeighborOrder = errors.New("distance: neighbour order k must satisfy 1 <= k < N")
)
