// SPDX-License-Identifier: MIT

// Package poly: the total order over the recursive data model.
//
// Purpose:
//   - Provide one explicit three-way comparator per level (Base, Factor,
//     factor sequence, Monomial, Polynomial) so canonical sorting and
//     structural matching share a single source of truth.
//
// Order (most significant key first):
//   - Base: kind (Sym < Derived < Nested); Sym by name; Derived by function
//     name, then parameter; Nested by sub-polynomial.
//   - Factor: base, then power.
//   - Factor sequence: lexicographic; a proper prefix orders first.
//   - Monomial: factor sequence, then coefficient.
//   - Polynomial: lexicographic over terms; a proper prefix orders first.
//
// Recursion descends into strictly smaller sub-polynomials, so every
// comparison terminates. Compare == 0 coincides with structural equality.
package poly

import (
	"cmp"
	"strings"
)

// Compare returns -1, 0 or +1 as b orders before, equal to, or after o.
func (b Base[T]) Compare(o Base[T]) int {
	if b.Kind != o.Kind {
		return cmp.Compare(b.Kind, o.Kind)
	}
	switch b.Kind {
	case KindSym:
		return strings.Compare(string(b.Sym), string(o.Sym))
	case KindDerived:
		if c := strings.Compare(b.Func, o.Func); c != 0 {
			return c
		}
		return b.param().Compare(o.param())
	default:
		return b.param().Compare(o.param())
	}
}

// Equal reports structural equality of b and o.
func (b Base[T]) Equal(o Base[T]) bool { return b.Compare(o) == 0 }

// Compare orders factors by base, then by power.
func (f Factor[T]) Compare(o Factor[T]) int {
	if c := f.Base.Compare(o.Base); c != 0 {
		return c
	}
	return cmp.Compare(f.Power, o.Power)
}

// Equal reports structural equality of f and o.
func (f Factor[T]) Equal(o Factor[T]) bool { return f.Compare(o) == 0 }

// compareFactors orders two factor sequences lexicographically.
func compareFactors[T Coefficient](a, b []Factor[T]) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// equalFactors reports whether two factor sequences are structurally identical.
func equalFactors[T Coefficient](a, b []Factor[T]) bool {
	if len(a) != len(b) {
		return false
	}
	return compareFactors(a, b) == 0
}

// Compare orders monomials by factor sequence; equal sequences are ordered
// by coefficient so that distinct monomials never compare equal.
func (m Monomial[T]) Compare(o Monomial[T]) int {
	if c := compareFactors(m.Factors, o.Factors); c != 0 {
		return c
	}
	return cmp.Compare(m.Coeff, o.Coeff)
}

// Equal reports structural equality of m and o (coefficient included).
func (m Monomial[T]) Equal(o Monomial[T]) bool { return m.Compare(o) == 0 }

// Like reports whether m and o share the same factor sequence
// and thus differ at most in coefficient.
func (m Monomial[T]) Like(o Monomial[T]) bool { return equalFactors(m.Factors, o.Factors) }

// Compare orders polynomials lexicographically over their terms.
func (p Polynomial[T]) Compare(o Polynomial[T]) int {
	n := min(len(p.Terms), len(o.Terms))
	for i := 0; i < n; i++ {
		if c := p.Terms[i].Compare(o.Terms[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(p.Terms), len(o.Terms))
}

// Equal reports structural equality. It is meaningful only when both sides
// are canonical; arithmetic results always are.
func (p Polynomial[T]) Equal(o Polynomial[T]) bool {
	if len(p.Terms) != len(o.Terms) {
		return false
	}
	return p.Compare(o) == 0
}
