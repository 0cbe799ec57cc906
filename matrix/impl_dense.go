// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of ring elements with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Block) and row/column export.
//
// AI-Hints:
//   - Kernels in impl_linear_algebra.go operate on the flat data slice directly.
//   - Use Block(r0,c0,h,w) to materialize a window (copy) with an independent lifetime.
//   - Elements are values; Set stores v as given and At returns the stored value.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Block: O(h*w).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxCol   = "Col"   // method tag used in error wrappers
	ctxBlock = "Block" // ctor tag for Dense.Block
	ctxMinor = "Minor" // method tag for Dense.Minor
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtRowBreak = "],\n ["
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of ring elements.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Ring[T]] struct {
	r, c int // row and column counts (> 0)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c matrix filled with the additive identity of T.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Ring[T]](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	z := zeroOf[T]()
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = z
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseOf creates an r×c matrix from values given in row-major order.
//
//	m, _ := NewDenseOf(2, 2, a, b,
//	                         c, d)
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch if len(values) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). values is copied.
func NewDenseOf[T Ring[T]](rows, cols int, values ...T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDenseOf: %d values for %dx%d: %w", len(values), rows, cols, ErrDimensionMismatch)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Callers (At/Set) wrap with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// at is the unchecked accessor used by kernels that validated shapes already.
func (m *Dense[T]) at(row, col int) T { return m.data[row*m.c+col] }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if m == nil {
		return zeroOf[T](), denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zeroOf[T](), denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i as a Vector of length Cols().
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) Row(i int) (Vector[T], error) {
	if m == nil {
		return Vector[T]{}, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return Vector[T]{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return NewVector(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col returns a copy of column j as a Vector of length Rows().
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) Col(j int) (Vector[T], error) {
	if m == nil {
		return Vector[T]{}, denseErrorf(ctxCol, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return Vector[T]{}, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.at(i, j)
	}

	return Vector[T]{data: out}, nil
}

// Clone returns a deep copy of the buffer. Elements are values and are shared
// as such; Ring implementations never mutate them.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Block copies the h×w window whose top-left corner is (r0, c0).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvalidDimensions if h <= 0 or w <= 0.
//   - ErrOutOfRange if the window does not fit inside m.
//
// Complexity: O(h*w).
func (m *Dense[T]) Block(r0, c0, h, w int) (*Dense[T], error) {
	if m == nil {
		return nil, denseErrorf(ctxBlock, r0, c0, ErrNilMatrix)
	}
	if h <= 0 || w <= 0 {
		return nil, denseErrorf(ctxBlock, r0, c0, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+h > m.r || c0+w > m.c {
		return nil, denseErrorf(ctxBlock, r0, c0, ErrOutOfRange)
	}
	out := make([]T, 0, h*w)
	for i := r0; i < r0+h; i++ {
		out = append(out, m.data[i*m.c+c0:i*m.c+c0+w]...)
	}

	return &Dense[T]{r: h, c: w, data: out}, nil
}

// Equal reports whether m and o have the same shape and equal elements.
// Two nil matrices are equal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders the matrix row by row:
//
//	[[a, b],
//	 [c, d]]
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen + _fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowBreak)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.at(i, j).String())
		}
	}
	sb.WriteString(_fmtClose + _fmtClose)

	return sb.String()
}
