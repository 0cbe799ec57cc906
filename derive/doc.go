// SPDX-License-Identifier: MIT

// Package derive builds geometric expressions symbolically on top of
// packages poly and matrix.
//
// The derive package provides:
//
//   - Rotation of a 3-vector about an axis n by an angle θ, kept symbolic
//     through sinθ and cosθ (RotatePerp, Rotate).
//   - The rotation matrix of a (not necessarily unit) quaternion and the
//     normal of the plane spanned by a rotated planar point and another
//     planar point (RotationMatrix, PlaneNormal, TripleProduct).
//   - Reduction of the resulting polynomials with the unit-norm constraint
//     q0² + q1² + q2² + q3² = 1 followed by grouping on the quaternion
//     symbols (SimplifyUnitQuaternion), reporting term counts at each stage.
//
// Every function is pure. Sizes grow quickly, so the triple product of three
// plane normals is best reduced before it is printed.
package derive
