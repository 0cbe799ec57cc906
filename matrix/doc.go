// Package matrix offers small, fixed-shape linear-algebra containers over any
// element type satisfying the Ring contract.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with safe accessors, block extraction,
//     transpose, products and a Laplace-expansion determinant.
//   - Vector, with dot and cross products.
//   - Quat, quaternions with their left and right multiplication matrices
//     and rotation by conjugation.
//
// The package knows nothing about its elements beyond Ring: addition,
// subtraction, multiplication, negation, a zero and equality. Using
// poly.Polynomial as the element type turns every container into a symbolic
// one, which is how rotation matrices and normal vectors are derived in
// package derive.
//
// All operations are exact and deterministic; errors are sentinel values
// matched with errors.Is (see errors.go).
package matrix
