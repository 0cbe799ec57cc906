// SPDX-License-Identifier: MIT

// Package poly: expansion of nested sub-polynomials.
package poly

// Expand flattens every term holding Nested factors of power 1 by
// distribution: the nested sub-polynomials are multiplied together,
// recursively expanded, then multiplied by the term's coefficient and its
// remaining factors. Terms without such factors are kept unchanged. The
// result is merged, so p is canonical on return and a second call is a no-op.
//
// Nested factors with a power other than 1 are kept as opaque factors.
// Derived parameters are never entered.
func (p *Polynomial[T]) Expand() {
	if p.IsZero() {
		return
	}
	out := make([]Monomial[T], 0, len(p.Terms))
	for _, t := range p.Terms {
		if !t.hasExpandable() {
			out = append(out, t)
			continue
		}
		out = append(out, t.expand().Terms...)
	}
	p.Terms = mergeTerms(out)
}

// hasExpandable reports whether m has a Nested factor of power 1.
func (m Monomial[T]) hasExpandable() bool {
	for _, f := range m.Factors {
		if f.Base.IsNested() && f.Power == 1 {
			return true
		}
	}
	return false
}

// expand distributes the power-1 Nested factors of m.
func (m Monomial[T]) expand() Polynomial[T] {
	rest := Monomial[T]{Coeff: m.Coeff}
	var product Polynomial[T]
	seen := false
	for _, f := range m.Factors {
		if !f.Base.IsNested() || f.Power != 1 {
			rest.Factors = append(rest.Factors, f)
			continue
		}
		if !seen {
			product, seen = f.Base.param(), true
			continue
		}
		product = product.Mul(f.Base.param())
	}
	// nesting depth strictly decreases, so this terminates
	product = product.Clone()
	product.Expand()
	return product.Mul(FromMonomial(rest))
}
