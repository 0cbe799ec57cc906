// SPDX-License-Identifier: MIT
// Package matrix - linear algebra kernels over ring elements.
//
// Purpose:
//   - Element-wise Add/Sub/Neg/Scale, matrix product Mul, MatVec.
//   - Transpose, Minor and Determinant by Laplace expansion.
//
// Determinism:
//   - Fixed loop orders (i → j → k); every accumulator starts at the ring's
//     zero and is folded left to right, so symbolic results are reproducible.
//
// Complexity:
//   - Add/Sub/Neg/Scale/Transpose: O(r*c) ring operations.
//   - Mul: O(r*n*c); MatVec: O(r*c).
//   - Determinant: O(n!) ring operations. Intended for the small (n <= 6)
//     symbolic matrices this package exists for; no pivoting is possible
//     since ring elements have no division.

package matrix

import "fmt"

// operation tags used in error wrappers
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opMatVec = "MatVec"
	opDet    = "Determinant"
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := make([]T, len(m.data))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return &Dense[T]{r: m.c, c: m.r, data: out}
}

// Add returns m + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape[T](m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return m.zipWith(b, func(x, y T) T { return x.Add(y) }), nil
}

// Sub returns m - b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape[T](m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return m.zipWith(b, func(x, y T) T { return x.Sub(y) }), nil
}

// zipWith applies f pairwise; shapes were validated by the caller.
func (m *Dense[T]) zipWith(b *Dense[T], f func(T, T) T) *Dense[T] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = f(m.data[i], b.data[i])
	}

	return &Dense[T]{r: m.r, c: m.c, data: out}
}

// Scale returns s·m, multiplying every element on the left by s.
func (m *Dense[T]) Scale(s T) *Dense[T] {
	out := make([]T, len(m.data))
	for i, v := range m.data {
		out[i] = s.Mul(v)
	}

	return &Dense[T]{r: m.r, c: m.c, data: out}
}

// Neg returns -m.
func (m *Dense[T]) Neg() *Dense[T] {
	out := make([]T, len(m.data))
	for i, v := range m.data {
		out[i] = v.Neg()
	}

	return &Dense[T]{r: m.r, c: m.c, data: out}
}

// Mul returns the matrix product m × b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols() != b.Rows()).
// Complexity: O(r*n*c) ring multiplications.
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible[T](m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return m.mul(b), nil
}

// mul is the unchecked product kernel.
func (m *Dense[T]) mul(b *Dense[T]) *Dense[T] {
	rows, inner, cols := m.r, m.c, b.c
	out := make([]T, rows*cols)
	z := zeroOf[T]()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc := z
			for k := 0; k < inner; k++ {
				acc = acc.Add(m.data[i*inner+k].Mul(b.data[k*cols+j]))
			}
			out[i*cols+j] = acc
		}
	}

	return &Dense[T]{r: rows, c: cols, data: out}
}

// MatVec returns y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (x.Len() != m.Cols()).
// Complexity: O(r*c).
func (m *Dense[T]) MatVec(x Vector[T]) (Vector[T], error) {
	if m == nil {
		return Vector[T]{}, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return Vector[T]{}, matrixErrorf(opMatVec, err)
	}

	return m.matVec(x), nil
}

// matVec is the unchecked matrix-vector kernel.
func (m *Dense[T]) matVec(x Vector[T]) Vector[T] {
	out := make([]T, m.r)
	z := zeroOf[T]()
	for i := 0; i < m.r; i++ {
		acc := z
		for j := 0; j < m.c; j++ {
			acc = acc.Add(m.data[i*m.c+j].Mul(x.data[j]))
		}
		out[i] = acc
	}

	return Vector[T]{data: out}
}

// Minor returns the determinant of m with row i and column j removed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrInvalidDimensions for a 1×1 matrix (the minor would be empty).
//   - ErrOutOfRange if (i, j) is outside m.
func (m *Dense[T]) Minor(i, j int) (T, error) {
	if err := ValidateSquare[T](m); err != nil {
		return zeroOf[T](), denseErrorf(ctxMinor, i, j, err)
	}
	if m.r == 1 {
		return zeroOf[T](), denseErrorf(ctxMinor, i, j, ErrInvalidDimensions)
	}
	if _, err := m.indexOf(i, j); err != nil {
		return zeroOf[T](), denseErrorf(ctxMinor, i, j, err)
	}

	return m.without(i, j).det(), nil
}

// Determinant returns det(m) by Laplace expansion along row 0.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateSquare[T](m); err != nil {
		return zeroOf[T](), matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det expands along row 0; 1×1 and 2×2 are closed forms.
func (m *Dense[T]) det() T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0].Mul(m.data[3]).Sub(m.data[1].Mul(m.data[2]))
	}
	acc := zeroOf[T]()
	for j := 0; j < m.c; j++ {
		term := m.data[j].Mul(m.without(0, j).det())
		if j%2 == 0 {
			acc = acc.Add(term)
		} else {
			acc = acc.Sub(term)
		}
	}

	return acc
}

// without returns the (n-1)×(n-1) copy of m lacking row i and column j.
func (m *Dense[T]) without(i, j int) *Dense[T] {
	n := m.r - 1
	out := make([]T, 0, n*n)
	for r := 0; r < m.r; r++ {
		if r == i {
			continue
		}
		for c := 0; c < m.c; c++ {
			if c != j {
				out = append(out, m.data[r*m.c+c])
			}
		}
	}

	return &Dense[T]{r: n, c: n, data: out}
}
