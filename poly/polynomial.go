// SPDX-License-Identifier: MIT

// Package poly: polynomial ring operations.
//
// Every operation in this file returns a canonical polynomial built in fresh
// storage; receivers and arguments are never modified.
//
// Complexity quicksheet (n, m = term counts):
//   - mergeTerms: O(n log n) comparisons.
//   - Add/Sub: O((n+m) log(n+m)); Mul: O(n*m) monomial products + merge.
package poly

import "golang.org/x/exp/slices"

// mergeTerms returns the canonical form of ts in a fresh slice: like terms
// (identical factor sequences) are summed, zero coefficients are dropped and
// the rest is sorted by factor sequence.
func mergeTerms[T Coefficient](ts []Monomial[T]) []Monomial[T] {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Monomial[T], len(ts))
	copy(out, ts)
	slices.SortStableFunc(out, func(a, b Monomial[T]) int { return compareFactors(a.Factors, b.Factors) })

	n := 0
	for i := 0; i < len(out); {
		t := out[i]
		j := i + 1
		for j < len(out) && out[j].Like(t) {
			t.Coeff += out[j].Coeff
			j++
		}
		if t.Coeff != 0 {
			out[n] = t
			n++
		}
		i = j
	}
	if n == 0 {
		return nil
	}
	return out[:n:n]
}

// MergeTerms returns p in canonical form. Idempotent.
func (p Polynomial[T]) MergeTerms() Polynomial[T] {
	return Polynomial[T]{Terms: mergeTerms(p.Terms)}
}

// Zero returns the additive identity. It lets Polynomial satisfy ring
// constraints that need a zero element from a value.
func (p Polynomial[T]) Zero() Polynomial[T] { return Polynomial[T]{} }

// IsZero reports whether p has no terms.
func (p Polynomial[T]) IsZero() bool { return len(p.Terms) == 0 }

// Len returns the number of terms.
func (p Polynomial[T]) Len() int { return len(p.Terms) }

// IsSymbol reports whether p is a single term that is a bare symbol.
func (p Polynomial[T]) IsSymbol() bool {
	return len(p.Terms) == 1 && p.Terms[0].IsSymbol()
}

// IsConstant reports whether p has no factors in any term (zero included).
func (p Polynomial[T]) IsConstant() bool {
	return len(p.Terms) == 0 || (len(p.Terms) == 1 && p.Terms[0].IsConstant())
}

// Add returns p + o.
func (p Polynomial[T]) Add(o Polynomial[T]) Polynomial[T] {
	ts := make([]Monomial[T], 0, len(p.Terms)+len(o.Terms))
	ts = append(ts, p.Terms...)
	ts = append(ts, o.Terms...)
	return Polynomial[T]{Terms: mergeTerms(ts)}
}

// Sub returns p - o, computed as p + (-o).
func (p Polynomial[T]) Sub(o Polynomial[T]) Polynomial[T] {
	return p.Add(o.Neg())
}

// Neg returns -p (every coefficient negated).
func (p Polynomial[T]) Neg() Polynomial[T] {
	if len(p.Terms) == 0 {
		return Polynomial[T]{}
	}
	ts := make([]Monomial[T], len(p.Terms))
	for i, t := range p.Terms {
		ts[i] = t.Neg()
	}
	return Polynomial[T]{Terms: ts}
}

// Mul returns p * o by the distributive law: every pairwise monomial
// product, then one merge.
func (p Polynomial[T]) Mul(o Polynomial[T]) Polynomial[T] {
	if len(p.Terms) == 0 || len(o.Terms) == 0 {
		return Polynomial[T]{}
	}
	ts := make([]Monomial[T], 0, len(p.Terms)*len(o.Terms))
	for _, a := range p.Terms {
		for _, b := range o.Terms {
			ts = append(ts, a.Mul(b))
		}
	}
	return Polynomial[T]{Terms: mergeTerms(ts)}
}

// Scale returns c * p.
func (p Polynomial[T]) Scale(c T) Polynomial[T] {
	return p.Mul(Const(c))
}

// Pow returns p^n for n >= 0 by repeated squaring; p^0 is the constant 1.
// Negative exponents are not representable as a polynomial product and
// yield the single factor (p)^n instead.
func (p Polynomial[T]) Pow(n int) Polynomial[T] {
	if n < 0 {
		return FromMonomial(NewMonomial[T](1, NewFactor(NestedBase(p), n)))
	}
	result := Const[T](1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}
