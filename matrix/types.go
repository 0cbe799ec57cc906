// SPDX-License-Identifier: MIT

// Package matrix: the element contract and the container interface.
// This file contains ONLY types. Errors live in errors.go, checks in
// validators.go, kernels in impl_*.go.
package matrix

// Ring is the capability contract an element type must satisfy to be stored
// in Dense, Vector or Quat. Nothing else about T is known to this package:
// in particular no multiplicative identity is required, so constructors that
// need one (NewIdentity) take it as an argument.
//
// All methods must treat the receiver and argument as immutable values.
type Ring[T any] interface {
	// Add returns the sum of the receiver and o.
	Add(o T) T
	// Sub returns the difference of the receiver and o.
	Sub(o T) T
	// Mul returns the product of the receiver and o.
	Mul(o T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Zero returns the additive identity. It must work on the Go zero value.
	Zero() T
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Equal reports structural equality.
	Equal(o T) bool
	// String renders the element for diagnostics.
	String() string
}

// Matrix is a two-dimensional mutable array of ring elements.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Ring[T]] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}

// zeroOf returns the additive identity of T.
func zeroOf[T Ring[T]]() T {
	var z T
	return z.Zero()
}
