// SPDX-License-Identifier: MIT

// Package derive: axis-angle rotation of symbolic 3-vectors.
package derive

import (
	"fmt"

	"github.com/katalvlaran/mathguru/matrix"
	"github.com/katalvlaran/mathguru/poly"
)

// SinCos returns sinθ and cosθ as derived terms of theta.
func SinCos[T poly.Coefficient](theta poly.Polynomial[T]) (sin, cos poly.Polynomial[T]) {
	return theta.Apply("sin"), theta.Apply("cos")
}

// UnitCircle returns the identity sin²θ + cos²θ = 1.
func UnitCircle[T poly.Coefficient](theta poly.Polynomial[T]) (poly.Identity[T], error) {
	sin, cos := SinCos(theta)
	id, err := poly.NewIdentity(sin.Mul(sin).Add(cos.Mul(cos)), poly.Const[T](1))
	if err != nil {
		return poly.Identity[T]{}, fmt.Errorf("UnitCircle: %w", err)
	}

	return id, nil
}

// RotatePerp rotates a about n assuming a ⟂ n and |n| = 1:
//
//	a·cosθ + (n × a)·sinθ
//
// Errors: matrix.ErrDimensionMismatch unless a and n are 3-vectors.
func RotatePerp[T poly.Coefficient](a, n matrix.Vector[poly.Polynomial[T]], cos, sin poly.Polynomial[T]) (matrix.Vector[poly.Polynomial[T]], error) {
	na, err := n.Cross(a)
	if err != nil {
		return matrix.Vector[poly.Polynomial[T]]{}, fmt.Errorf("RotatePerp: %w", err)
	}

	return a.Scale(cos).Add(na.Scale(sin))
}

// Rotate rotates a about the unit axis n with Rodrigues' formula:
//
//	n(n·a) + (a − n(n·a))·cosθ + (n × a)·sinθ
//
// Errors: matrix.ErrDimensionMismatch unless a and n are 3-vectors.
func Rotate[T poly.Coefficient](a, n matrix.Vector[poly.Polynomial[T]], cos, sin poly.Polynomial[T]) (matrix.Vector[poly.Polynomial[T]], error) {
	na, err := n.Cross(a)
	if err != nil {
		return matrix.Vector[poly.Polynomial[T]]{}, fmt.Errorf("Rotate: %w", err)
	}
	d, err := n.Dot(a)
	if err != nil {
		return matrix.Vector[poly.Polynomial[T]]{}, fmt.Errorf("Rotate: %w", err)
	}
	para := n.Scale(d)
	perp, err := a.Sub(para)
	if err != nil {
		return matrix.Vector[poly.Polynomial[T]]{}, fmt.Errorf("Rotate: %w", err)
	}

	out, err := para.Add(perp.Scale(cos))
	if err != nil {
		return matrix.Vector[poly.Polynomial[T]]{}, fmt.Errorf("Rotate: %w", err)
	}

	return out.Add(na.Scale(sin))
}

// SphericalAxis returns the unit axis (sinψ·cosω, sinψ·sinω, cosψ) for
// polar angle psi and azimuth omega.
func SphericalAxis[T poly.Coefficient](psi, omega poly.Polynomial[T]) matrix.Vector[poly.Polynomial[T]] {
	sinPsi, cosPsi := SinCos(psi)
	sinOmega, cosOmega := SinCos(omega)

	return matrix.NewVector3(sinPsi.Mul(cosOmega), sinPsi.Mul(sinOmega), cosPsi)
}
