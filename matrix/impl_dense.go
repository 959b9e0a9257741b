// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based row extraction (SliceRows) so estimators never alias caller data.
//   - Reject NaN/Inf at ingestion (NewFromRows, NewColumn, Set).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowView: O(1); SliceRows: O(r'*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"         // method tag used in error wrappers
	ctxSet      = "Set"        // method tag used in error wrappers
	ctxRow      = "Row"        // method tag used in error wrappers
	ctxCol      = "Col"        // method tag used in error wrappers
	ctxSetCol   = "SetCol"     // method tag used in error wrappers
	ctxSlice    = "SliceRows"  // ctor tag for Dense.SliceRows
	ctxFromRows = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of observations.
//   - r,c hold dimensions (rows = observations, cols = variables).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense by copying a slice of equal-length rows.
// MAIN DESCRIPTION:
//   - Ingestion entry point for sample matrices (N observations × d variables).
//
// Implementation:
//   - Stage 1: validate non-empty input and uniform row length.
//   - Stage 2: copy values row by row, rejecting NaN/Inf.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrRaggedRows (row lengths differ).
//   - ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if !isFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// NewColumn builds an N×1 Dense from a univariate series (copied).
func NewColumn(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("NewColumn: %w", ErrInvalidDimensions)
	}
	m := &Dense{r: len(v), c: 1, data: make([]float64, len(v))}
	for i, x := range v {
		if !isFinite(x) {
			return nil, denseErrorf("NewColumn", i, 0, ErrNaNInf)
		}
		m.data[i] = x
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange for invalid indices; ErrNaNInf for non-finite v.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowView returns row i as a sub-slice of the backing buffer (no copy).
// The slice MUST be treated as read-only; it panics like a slice index when
// i is out of range, which is why it is reserved for hot loops that already
// iterate over [0, Rows()).
// Complexity: O(1).
func (m *Dense) RowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with v (len(v) must equal Rows()).
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r).
func (m *Dense) SetCol(j int, v []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetCol, len(v), j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		if !isFinite(v[i]) {
			return denseErrorf(ctxSetCol, i, j, ErrNaNInf)
		}
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy values

	return &Dense{r: m.r, c: m.c, data: cp}
}

// SliceRows materializes rows [start, end) as an independent copy.
// MAIN DESCRIPTION:
//   - Used for time-lagged windows and change-point segments.
//
// Errors:
//   - ErrOutOfRange when the window is outside [0, Rows()].
//   - ErrInvalidDimensions when the window is empty.
//
// Complexity:
//   - Time O((end-start)*c), Space O((end-start)*c).
func (m *Dense) SliceRows(start, end int) (*Dense, error) {
	if start < 0 || end > m.r || start > end {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSlice, start, end, ErrOutOfRange)
	}
	if start == end {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSlice, start, end, ErrInvalidDimensions)
	}
	cp := make([]float64, (end-start)*m.c)
	copy(cp, m.data[start*m.c:end*m.c])

	return &Dense{r: end - start, c: m.c, data: cp}, nil
}

// Apply replaces every element with f(i, j, v), visiting row-major.
// The result must stay finite; the first non-finite output aborts with ErrNaNInf
// and leaves the already-visited elements updated.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, off int
	var nv float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = i*m.c + j
			nv = f(i, j, m.data[off])
			if !isFinite(nv) {
				return denseErrorf("Apply", i, j, ErrNaNInf)
			}
			m.data[off] = nv
		}
	}

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
