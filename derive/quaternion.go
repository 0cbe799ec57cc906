// SPDX-License-Identifier: MIT

// Package derive: quaternion rotations and plane normals.
package derive

import (
	"fmt"

	"github.com/katalvlaran/mathguru/matrix"
	"github.com/katalvlaran/mathguru/poly"
)

// PlanarPoint returns the homogeneous planar point (name_x, name_y, 1).
func PlanarPoint[T poly.Coefficient](name string) matrix.Vector[poly.Polynomial[T]] {
	return matrix.NewVector3(poly.Var[T](name+"_x"), poly.Var[T](name+"_y"), poly.Const[T](1))
}

// QuatOf returns the quaternion whose components are the given symbols.
func QuatOf[T poly.Coefficient](q0, q1, q2, q3 string) matrix.Quat[poly.Polynomial[T]] {
	return matrix.NewQuat(poly.Var[T](q0), poly.Var[T](q1), poly.Var[T](q2), poly.Var[T](q3))
}

// RotationMatrix returns the 3×3 matrix M with M·v == q.Rotate(v): the
// lower-right block of L(q)·R(q̄). For a unit q it is a proper rotation;
// otherwise it is scaled by |q|².
func RotationMatrix[T poly.Coefficient](q matrix.Quat[poly.Polynomial[T]]) (*matrix.Dense[poly.Polynomial[T]], error) {
	lr, err := q.LeftMulMatrix().Mul(q.Conjugate().RightMulMatrix())
	if err != nil {
		return nil, fmt.Errorf("RotationMatrix: %w", err)
	}

	return lr.Block(1, 1, 3, 3)
}

// PlaneNormal returns rotate_q(a) × b for the planar points named a and b.
func PlaneNormal[T poly.Coefficient](a, b string, q matrix.Quat[poly.Polynomial[T]]) (matrix.Vector[poly.Polynomial[T]], error) {
	ra, err := q.Rotate(PlanarPoint[T](a))
	if err != nil {
		return matrix.Vector[poly.Polynomial[T]]{}, fmt.Errorf("PlaneNormal: %w", err)
	}

	return ra.Cross(PlanarPoint[T](b))
}

// TripleProduct returns (u × v)·w.
func TripleProduct[T matrix.Ring[T]](u, v, w matrix.Vector[T]) (T, error) {
	uv, err := u.Cross(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("TripleProduct: %w", err)
	}

	return uv.Dot(w)
}
