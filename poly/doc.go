// Package poly implements exact symbolic algebra over multivariate
// polynomials whose atoms are symbols, derived terms (a named function
// applied to a sub-polynomial) and nested sub-polynomials.
//
// The package provides:
//
//   - A canonical representation: every Monomial keeps its factors merged and
//     sorted, every Polynomial keeps its terms merged, sorted and zero-free.
//   - A total order over Base values (Sym < Derived < Nested) that makes the
//     canonical form, and therefore structural equality, well defined.
//   - Ring arithmetic (Add, Sub, Mul, Neg, Zero), so a Polynomial can be used
//     as the coefficient type of the ring-generic containers in package matrix.
//   - Transformations: ExtractCommonFactors, Expand, GroupBy, CollectBy and
//     SimplifyByIdentity.
//
// Quick example:
//
//	x, y := poly.Var[int]("x"), poly.Var[int]("y")
//	p := x.Mul(x).Add(y.Mul(y)).Add(poly.Var[int]("z"))
//	s, _ := p.SimplifyByIdentity(x.Mul(x).Add(y.Mul(y)), poly.Const(1))
//	s.Expand()
//	fmt.Println(s) // 1 + z
//
// Matching in SimplifyByIdentity is structural: two algebraically equal
// expressions of different shape are not recognized as the same term.
//
// All values are plain data with no internal synchronization. Arithmetic
// returns fresh values; Expand, GroupBy and ExtractCommonFactors rewrite the
// receiver's term slice and never write into storage shared with other values.
package poly
