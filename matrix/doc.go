// Package matrix provides the sample-matrix container used by every estimator.
//
// The matrix package provides:
//
//   - Dense: a row-major N×d matrix of finite float64 values (rows are
//     observations, columns are variables) with bounds-checked accessors.
//   - Copying row extraction (SliceRows) and concatenation
//     (HStack, VStack), so estimators never alias caller data.
//   - Column statistics (ColMaxAbs, Covariance, LogDetCovariance) backed by
//     gonum through a zero-copy Gonum() view.
//
// All errors are sentinels from errors.go, wrapped with the operation name:
//
//	x, err := matrix.NewFromRows([][]float64{{1, 2}, {2, 5}, {10, 10}})
//	if errors.Is(err, matrix.ErrRaggedRows) { ... }
package matrix
