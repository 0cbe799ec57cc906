// SPDX-License-Identifier: MIT

// Package matrix - Vector of ring elements.
//
// A Vector is an immutable value: every operation returns a new Vector and
// never writes into the operands' storage.
package matrix

import (
	"fmt"
	"strings"
)

const opCross = "Cross"

// Vector is a fixed-length sequence of ring elements.
type Vector[T Ring[T]] struct {
	data []T
}

// NewVector returns a vector holding a copy of values.
func NewVector[T Ring[T]](values ...T) Vector[T] {
	data := make([]T, len(values))
	copy(data, values)

	return Vector[T]{data: data}
}

// NewVector3 returns the 3-vector (x, y, z).
func NewVector3[T Ring[T]](x, y, z T) Vector[T] {
	return Vector[T]{data: []T{x, y, z}}
}

// NewZeroVector returns the n-vector of zeros.
// Errors: ErrInvalidDimensions if n <= 0.
func NewZeroVector[T Ring[T]](n int) (Vector[T], error) {
	if n <= 0 {
		return Vector[T]{}, ErrInvalidDimensions
	}
	z := zeroOf[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = z
	}

	return Vector[T]{data: data}, nil
}

// Len returns the number of components.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns component i.
// Errors: ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return zeroOf[T](), fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the components.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Dot returns Σ v_i·o_i.
// Errors: ErrDimensionMismatch.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return zeroOf[T](), fmt.Errorf("Dot: %w", err)
	}
	acc := zeroOf[T]()
	for i := range v.data {
		acc = acc.Add(v.data[i].Mul(o.data[i]))
	}

	return acc, nil
}

// Cross returns the cross product v × o of two 3-vectors:
//
//	(v_y·o_z − o_y·v_z, v_z·o_x − o_z·v_x, v_x·o_y − o_x·v_y)
//
// The operand order inside each product is fixed, which matters only for
// non-commutative rings.
// Errors: ErrDimensionMismatch if either length is not 3.
func (v Vector[T]) Cross(o Vector[T]) (Vector[T], error) {
	if err := ValidateVecLen(v, 3); err != nil {
		return Vector[T]{}, matrixErrorf(opCross, err)
	}
	if err := ValidateVecLen(o, 3); err != nil {
		return Vector[T]{}, matrixErrorf(opCross, err)
	}

	return v.cross(o), nil
}

// cross is the unchecked 3-vector kernel.
func (v Vector[T]) cross(o Vector[T]) Vector[T] {
	x, y, z := v.data[0], v.data[1], v.data[2]
	ox, oy, oz := o.data[0], o.data[1], o.data[2]

	return NewVector3(
		y.Mul(oz).Sub(oy.Mul(z)),
		z.Mul(ox).Sub(oz.Mul(x)),
		x.Mul(oy).Sub(ox.Mul(y)),
	)
}

// Add returns v + o.
// Errors: ErrDimensionMismatch.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return Vector[T]{}, matrixErrorf(opAdd, err)
	}

	return v.zipWith(o, func(a, b T) T { return a.Add(b) }), nil
}

// Sub returns v - o.
// Errors: ErrDimensionMismatch.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return Vector[T]{}, matrixErrorf(opSub, err)
	}

	return v.zipWith(o, func(a, b T) T { return a.Sub(b) }), nil
}

func (v Vector[T]) zipWith(o Vector[T], f func(T, T) T) Vector[T] {
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = f(v.data[i], o.data[i])
	}

	return Vector[T]{data: out}
}

// Scale returns v·s, multiplying every component on the right by s.
func (v Vector[T]) Scale(s T) Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x.Mul(s)
	}

	return Vector[T]{data: out}
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x.Neg()
	}

	return Vector[T]{data: out}
}

// Equal reports whether v and o have the same length and equal components.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders the vector as "(a, b, c)".
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
