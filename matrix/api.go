// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation and holds no logic of its own.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new rows×cols matrix of zeros.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Ring[T]](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns the n×n identity with one on the diagonal. The ring
// contract has no multiplicative identity, so the caller supplies it.
// Errors: ErrInvalidDimensions if n <= 0.
func NewIdentity[T Ring[T]](n int, one T) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[T Ring[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// Product multiplies a chain of matrices left to right: ms[0]·ms[1]·…
// Errors: ErrInvalidDimensions for an empty chain, otherwise as Dense.Mul.
func Product[T Ring[T]](ms ...*Dense[T]) (*Dense[T], error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}
	if ms[0] == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		next, err := acc.Mul(m)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc.Clone(), nil
}

// Det is an alias for Dense.Determinant.
func Det[T Ring[T]](m *Dense[T]) (T, error) { return m.Determinant() }
