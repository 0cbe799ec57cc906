// SPDX-License-Identifier: MIT

// Package poly: monomial algebra.
//
// Purpose:
//   - Keep factors merged and sorted (mergeFactors is the only normalizer).
//   - Provide the lookup primitives (PowerOf, Extract) used by factoring,
//     collection and identity rewriting.
//
// Complexity:
//   - mergeFactors: O(k log k) for k factors (sort, then one merge pass).
//   - PowerOf/Extract: O(k) comparisons.
package poly

import "golang.org/x/exp/slices"

// mergeFactors returns the canonical form of fs in a fresh slice: powers of
// factors sharing a base are summed, zero powers are dropped and the rest is
// sorted by the Base order. fs itself is never written.
func mergeFactors[T Coefficient](fs []Factor[T]) []Factor[T] {
	if len(fs) == 0 {
		return nil
	}
	out := make([]Factor[T], len(fs))
	copy(out, fs)
	slices.SortStableFunc(out, func(a, b Factor[T]) int { return a.Base.Compare(b.Base) })

	n := 0
	for i := 0; i < len(out); {
		f := out[i]
		j := i + 1
		for j < len(out) && out[j].Base.Equal(f.Base) {
			f.Power += out[j].Power
			j++
		}
		if f.Power != 0 {
			out[n] = f
			n++
		}
		i = j
	}
	if n == 0 {
		return nil
	}
	return out[:n:n]
}

// MergeFactors returns m with its factors in canonical form. Idempotent.
func (m Monomial[T]) MergeFactors() Monomial[T] {
	return Monomial[T]{Coeff: m.Coeff, Factors: mergeFactors(m.Factors)}
}

// PowerOf returns the power of the factor whose base equals base, or 0 if absent.
func (m Monomial[T]) PowerOf(base Base[T]) int {
	for _, f := range m.Factors {
		if f.Base.Equal(base) {
			return f.Power
		}
	}
	return 0
}

// Extract divides m by factor. It succeeds when m has a factor on the same
// base with power >= factor.Power; the matching factor's power is reduced
// (and the factor dropped when it reaches 0), the coefficient is kept.
// Otherwise ok is false.
func (m Monomial[T]) Extract(factor Factor[T]) (rest Monomial[T], ok bool) {
	for i, f := range m.Factors {
		if !f.Base.Equal(factor.Base) {
			continue
		}
		if f.Power < factor.Power {
			return Monomial[T]{}, false
		}
		fs := make([]Factor[T], 0, len(m.Factors))
		fs = append(fs, m.Factors[:i]...)
		if p := f.Power - factor.Power; p != 0 {
			fs = append(fs, Factor[T]{Base: f.Base, Power: p})
		}
		fs = append(fs, m.Factors[i+1:]...)
		if len(fs) == 0 {
			fs = nil
		}
		return Monomial[T]{Coeff: m.Coeff, Factors: fs}, true
	}
	return Monomial[T]{}, false
}

// IsSymbol reports whether m is exactly one bare symbol to the first power.
// The coefficient is not inspected.
func (m Monomial[T]) IsSymbol() bool {
	return len(m.Factors) == 1 && m.Factors[0].IsSymbol()
}

// IsConstant reports whether m has no factors.
func (m Monomial[T]) IsConstant() bool { return len(m.Factors) == 0 }

// Mul multiplies coefficients and concatenates factors, then merges.
func (m Monomial[T]) Mul(o Monomial[T]) Monomial[T] {
	fs := make([]Factor[T], 0, len(m.Factors)+len(o.Factors))
	fs = append(fs, m.Factors...)
	fs = append(fs, o.Factors...)
	return Monomial[T]{Coeff: m.Coeff * o.Coeff, Factors: mergeFactors(fs)}
}

// Neg negates the coefficient; factors are shared unchanged.
func (m Monomial[T]) Neg() Monomial[T] {
	return Monomial[T]{Coeff: -m.Coeff, Factors: m.Factors}
}

// hasNested reports whether any factor has a Nested base.
func (m Monomial[T]) hasNested() bool {
	return slices.ContainsFunc(m.Factors, func(f Factor[T]) bool { return f.Base.IsNested() })
}

// split partitions m's factors by keep; the coefficient travels with kept.
func (m Monomial[T]) split(keep func(Factor[T]) bool) (kept Monomial[T], outside []Factor[T]) {
	kept.Coeff = m.Coeff
	for _, f := range m.Factors {
		if keep(f) {
			kept.Factors = append(kept.Factors, f)
		} else {
			outside = append(outside, f)
		}
	}
	return kept, outside
}
