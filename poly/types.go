// SPDX-License-Identifier: MIT

// Package poly: domain types.
// This file contains ONLY the data model (Symbol, Base, Factor, Monomial,
// Polynomial) and its constructors. Ordering lives in order.go, arithmetic in
// monomial.go/polynomial.go, rendering in format.go.
package poly

import "golang.org/x/exp/constraints"

// Coefficient is the set of numeric types a Monomial may carry.
// Coefficients must be exact, so only signed integers are admitted.
type Coefficient interface {
	constraints.Signed
}

// Symbol is a named, opaque algebraic atom (a variable).
// Two symbols are equal iff their names are equal; they order lexicographically.
type Symbol string

// BaseKind tags the variant held by a Base. The numeric order of the kinds
// is the most significant key of the Base order.
type BaseKind uint8

const (
	// KindSym is a bare symbol.
	KindSym BaseKind = iota
	// KindDerived is a named function applied to a polynomial parameter.
	KindDerived
	// KindNested is a polynomial used as a single algebraic unit.
	KindNested
)

// String returns a short tag for the kind.
func (k BaseKind) String() string {
	switch k {
	case KindSym:
		return "sym"
	case KindDerived:
		return "derived"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Base is the thing a Factor raises to a power. It is a closed variant:
//   - KindSym:     Sym holds the symbol.
//   - KindDerived: Func holds the function name, Poly the parameter.
//   - KindNested:  Poly holds the sub-polynomial.
//
// Build values with SymBase, DerivedBase and NestedBase. The referenced
// polynomial is never mutated after construction.
type Base[T Coefficient] struct {
	Kind BaseKind
	Sym  Symbol
	Func string
	Poly *Polynomial[T]
}

// SymBase returns the Base for symbol name.
func SymBase[T Coefficient](name Symbol) Base[T] {
	return Base[T]{Kind: KindSym, Sym: name}
}

// DerivedBase returns the Base for fn applied to param.
func DerivedBase[T Coefficient](fn string, param Polynomial[T]) Base[T] {
	p := param.Clone()
	return Base[T]{Kind: KindDerived, Func: fn, Poly: &p}
}

// NestedBase returns the Base wrapping p as a single unit.
func NestedBase[T Coefficient](p Polynomial[T]) Base[T] {
	c := p.Clone()
	return Base[T]{Kind: KindNested, Poly: &c}
}

// IsSymbol reports whether b is a bare symbol.
func (b Base[T]) IsSymbol() bool { return b.Kind == KindSym }

// IsNested reports whether b wraps a sub-polynomial.
func (b Base[T]) IsNested() bool { return b.Kind == KindNested }

// param returns the referenced polynomial, or the zero polynomial for a symbol.
func (b Base[T]) param() Polynomial[T] {
	if b.Poly == nil {
		return Polynomial[T]{}
	}
	return *b.Poly
}

// Factor is a Base raised to a signed integer power.
// A Factor with Power 0 never survives in canonical form.
type Factor[T Coefficient] struct {
	Base  Base[T]
	Power int
}

// NewFactor returns base^power.
func NewFactor[T Coefficient](base Base[T], power int) Factor[T] {
	return Factor[T]{Base: base, Power: power}
}

// IsSymbol reports whether f is a bare symbol to the first power.
func (f Factor[T]) IsSymbol() bool { return f.Power == 1 && f.Base.IsSymbol() }

// Monomial is a coefficient times a product of factors over distinct bases.
//
// Canonical form: factors carry pairwise-distinct bases, sorted ascending by
// the Base order, and no factor has power 0. NewMonomial and every operation
// in this package return canonical monomials.
type Monomial[T Coefficient] struct {
	Coeff   T
	Factors []Factor[T]
}

// NewMonomial returns the canonical monomial coeff·Πfactors.
func NewMonomial[T Coefficient](coeff T, factors ...Factor[T]) Monomial[T] {
	return Monomial[T]{Coeff: coeff, Factors: mergeFactors(factors)}
}

// Polynomial is a sum of monomials with distinct factor sequences.
//
// Canonical form: terms carry pairwise-distinct factor sequences, sorted
// ascending by factor-sequence order, and no term has a zero coefficient.
// The zero value is the additive identity.
type Polynomial[T Coefficient] struct {
	Terms []Monomial[T]
}

// Zero returns the polynomial with no terms.
func Zero[T Coefficient]() Polynomial[T] { return Polynomial[T]{} }

// Const returns the constant polynomial c (zero when c == 0).
func Const[T Coefficient](c T) Polynomial[T] {
	if c == 0 {
		return Polynomial[T]{}
	}
	return Polynomial[T]{Terms: []Monomial[T]{{Coeff: c}}}
}

// Var returns the polynomial consisting of the single symbol name.
func Var[T Coefficient](name string) Polynomial[T] {
	return FromSymbol[T](Symbol(name))
}

// FromSymbol returns the polynomial consisting of the single symbol s.
func FromSymbol[T Coefficient](s Symbol) Polynomial[T] {
	return Polynomial[T]{Terms: []Monomial[T]{{
		Coeff:   1,
		Factors: []Factor[T]{{Base: SymBase[T](s), Power: 1}},
	}}}
}

// FromMonomial returns the single-term polynomial m (zero when m's coefficient is 0).
func FromMonomial[T Coefficient](m Monomial[T]) Polynomial[T] {
	if m.Coeff == 0 {
		return Polynomial[T]{}
	}
	return Polynomial[T]{Terms: []Monomial[T]{{Coeff: m.Coeff, Factors: mergeFactors(m.Factors)}}}
}

// Apply returns the single-term polynomial fn(p).
func (p Polynomial[T]) Apply(fn string) Polynomial[T] {
	return Polynomial[T]{Terms: []Monomial[T]{{
		Coeff:   1,
		Factors: []Factor[T]{{Base: DerivedBase(fn, p), Power: 1}},
	}}}
}

// Clone returns a copy of p whose term and factor slices are not shared with p.
// Referenced sub-polynomials are immutable and stay shared.
func (p Polynomial[T]) Clone() Polynomial[T] {
	if p.Terms == nil {
		return Polynomial[T]{}
	}
	terms := make([]Monomial[T], len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.clone()
	}
	return Polynomial[T]{Terms: terms}
}

func (m Monomial[T]) clone() Monomial[T] {
	var fs []Factor[T]
	if m.Factors != nil {
		fs = make([]Factor[T], len(m.Factors))
		copy(fs, m.Factors)
	}
	return Monomial[T]{Coeff: m.Coeff, Factors: fs}
}
