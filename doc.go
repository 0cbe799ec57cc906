// Package mathguru is an exact symbolic algebra engine for multivariate
// polynomials, built to derive geometric formulas (rotations, plane
// normals, determinants) without any floating-point step.
//
// 🚀 What is mathguru?
//
//	A small, dependency-light library that brings together:
//		• Canonical polynomials over symbols, derived terms like sinθ and
//		  nested sub-polynomials, with exact integer coefficients
//		• Transformations: common-factor extraction, expansion, grouping and
//		  rewriting by an identity such as x² + y² = 1
//		• Ring-generic matrices, vectors and quaternions that work the same
//		  over int and over polynomials
//		• Ready-made derivations: Rodrigues rotation, quaternion rotation
//		  matrices and plane normals reduced under the unit-norm constraint
//
// ✨ Why choose mathguru?
//
//   - Exact – integer coefficients and structural equality, no rounding step
//   - Deterministic – one total order drives canonical form and output
//   - Pure Go – values in, values out, no global state
//
// Everything is organized under four packages:
//
//	poly/          Polynomial, Monomial, Factor, Base and their transformations
//	matrix/        Ring contract, Dense, Vector and Quat containers
//	derive/        rotation and plane-normal derivations built on the two above
//	cmd/mathguru/  command-line front end (cobra, YAML config, slog)
//
// Quick example:
//
//	x, y := poly.Var[int]("x"), poly.Var[int]("y")
//	p := x.Mul(x).Add(y.Mul(y)).Add(poly.Var[int]("z"))
//	s, _ := p.SimplifyByIdentity(x.Mul(x).Add(y.Mul(y)), poly.Const(1))
//	s.Expand()
//	fmt.Println(s) // 1 + z
//
//	go get github.com/katalvlaran/mathguru
package mathguru
