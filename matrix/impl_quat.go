// SPDX-License-Identifier: MIT

// Package matrix - quaternions over ring elements.
//
// Purpose:
//   - Represent q = q0 + q1·i + q2·j + q3·k as a 4-vector (q0, q1, q2, q3).
//   - Express the Hamilton product through the left and right multiplication
//     matrices, so that p·q == L(p)·q == R(q)·p as 4-vectors.
//   - Rotate 3-vectors by conjugation: v ↦ q·(0, v)·q̄.
//
// No unit-norm assumption is made; for a symbolic q the caller simplifies
// with the constraint q0² + q1² + q2² + q3² = 1 afterwards.
package matrix

import "fmt"

// Quat is a quaternion with ring-element components. Build it with NewQuat
// or QuatFromVector3; the zero value has no components.
type Quat[T Ring[T]] struct {
	v Vector[T]
}

// NewQuat returns q0 + q1·i + q2·j + q3·k.
func NewQuat[T Ring[T]](q0, q1, q2, q3 T) Quat[T] {
	return Quat[T]{v: Vector[T]{data: []T{q0, q1, q2, q3}}}
}

// QuatFromVector3 returns the pure quaternion (0, v).
// Errors: ErrDimensionMismatch if v is not a 3-vector.
func QuatFromVector3[T Ring[T]](v Vector[T]) (Quat[T], error) {
	if err := ValidateVecLen(v, 3); err != nil {
		return Quat[T]{}, fmt.Errorf("QuatFromVector3: %w", err)
	}

	return NewQuat(zeroOf[T](), v.data[0], v.data[1], v.data[2]), nil
}

// Components returns q0, q1, q2, q3.
func (q Quat[T]) Components() (q0, q1, q2, q3 T) {
	return q.v.data[0], q.v.data[1], q.v.data[2], q.v.data[3]
}

// AsVector returns the 4-vector (q0, q1, q2, q3).
func (q Quat[T]) AsVector() Vector[T] { return q.v }

// Vector3 returns the vector part (q1, q2, q3).
func (q Quat[T]) Vector3() Vector[T] { return NewVector(q.v.data[1:]...) }

// Conjugate returns q̄ = (q0, -q1, -q2, -q3).
func (q Quat[T]) Conjugate() Quat[T] {
	q0, q1, q2, q3 := q.Components()

	return NewQuat(q0, q1.Neg(), q2.Neg(), q3.Neg())
}

// LeftMulMatrix returns L(q), the 4×4 matrix with q·p == L(q)·p.
func (q Quat[T]) LeftMulMatrix() *Dense[T] {
	q0, q1, q2, q3 := q.Components()

	return &Dense[T]{r: 4, c: 4, data: []T{
		q0, q1.Neg(), q2.Neg(), q3.Neg(),
		q1, q0, q3.Neg(), q2,
		q2, q3, q0, q1.Neg(),
		q3, q2.Neg(), q1, q0,
	}}
}

// RightMulMatrix returns R(q), the 4×4 matrix with p·q == R(q)·p.
func (q Quat[T]) RightMulMatrix() *Dense[T] {
	q0, q1, q2, q3 := q.Components()

	return &Dense[T]{r: 4, c: 4, data: []T{
		q0, q1.Neg(), q2.Neg(), q3.Neg(),
		q1, q0, q3, q2.Neg(),
		q2, q3.Neg(), q0, q1,
		q3, q2, q1.Neg(), q0,
	}}
}

// Mul returns the Hamilton product q·o, computed as L(q)·o.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.LeftMulMatrix().matVec(o.v)}
}

// Add returns q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.v.zipWith(o.v, func(a, b T) T { return a.Add(b) })}
}

// Sub returns q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.v.zipWith(o.v, func(a, b T) T { return a.Sub(b) })}
}

// Neg returns -q.
func (q Quat[T]) Neg() Quat[T] { return Quat[T]{v: q.v.Neg()} }

// Scale returns q·s component-wise.
func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T]{v: q.v.Scale(s)} }

// Rotate returns the vector part of q·(0, v)·q̄.
// Errors: ErrDimensionMismatch if v is not a 3-vector.
func (q Quat[T]) Rotate(v Vector[T]) (Vector[T], error) {
	p, err := QuatFromVector3(v)
	if err != nil {
		return Vector[T]{}, fmt.Errorf("Rotate: %w", err)
	}

	return q.Mul(p).Mul(q.Conjugate()).Vector3(), nil
}

// Equal reports component-wise equality.
func (q Quat[T]) Equal(o Quat[T]) bool { return q.v.Equal(o.v) }

// String renders the quaternion as "Quat(q0, q1, q2, q3)".
func (q Quat[T]) String() string { return "Quat" + q.v.String() }
