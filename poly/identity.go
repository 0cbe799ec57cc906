// SPDX-License-Identifier: MIT

// Package poly: collection by target factors and identity-based rewriting.
//
// Purpose:
//   - CollectBy partitions terms by the first target factor they are divisible by.
//   - SimplifyByIdentity rewrites Σ term·factor_i into term·rhs using a known
//     identity Σ factor_i == rhs.
//
// Matching is by exact structural equality of canonical terms; an
// algebraically equal but differently shaped term is not a match.
package poly

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CollectBy distributes the terms of p over targets. Each term is divided by
// the first target it contains (see Monomial.Extract) and the quotient goes
// into the bucket parallel to that target; terms matching no target go to
// remainder unchanged. Buckets are returned in canonical order.
func (p Polynomial[T]) CollectBy(targets []Factor[T]) (collected []Polynomial[T], remainder Polynomial[T]) {
	buckets := make([][]Monomial[T], len(targets))
	var rest []Monomial[T]
	for _, t := range p.Terms {
		matched := false
		for i, f := range targets {
			if q, ok := t.Extract(f); ok {
				buckets[i] = append(buckets[i], q)
				matched = true
				break
			}
		}
		if !matched {
			rest = append(rest, t)
		}
	}

	collected = make([]Polynomial[T], len(targets))
	for i, b := range buckets {
		collected[i] = Polynomial[T]{Terms: mergeTerms(b)}
	}
	return collected, Polynomial[T]{Terms: rest}
}

// Identity is a validated rewriting rule lhs == rhs where lhs is a sum of
// single bare factors with coefficient 1 (e.g. x^2 + y^2 + z^2) and rhs is a
// single monomial (e.g. the constant 1).
type Identity[T Coefficient] struct {
	lhs, rhs Polynomial[T]
	factors  []Factor[T]
	rhsTerm  Monomial[T]
}

// NewIdentity validates the shape of lhs == rhs.
//
// Errors:
//   - ErrMalformedIdentity if lhs is zero, if any lhs term has a coefficient
//     other than 1 or not exactly one factor, or if rhs is not one monomial.
func NewIdentity[T Coefficient](lhs, rhs Polynomial[T]) (Identity[T], error) {
	if lhs.IsZero() {
		return Identity[T]{}, polyErrorf("NewIdentity", fmt.Errorf("%w: lhs is zero", ErrMalformedIdentity))
	}
	factors := make([]Factor[T], 0, len(lhs.Terms))
	for i, t := range lhs.Terms {
		if t.Coeff != 1 || len(t.Factors) != 1 {
			return Identity[T]{}, polyErrorf("NewIdentity",
				fmt.Errorf("%w: lhs term %d (%s) is not a single factor with coefficient 1", ErrMalformedIdentity, i, t))
		}
		factors = append(factors, t.Factors[0])
	}
	if len(rhs.Terms) != 1 {
		return Identity[T]{}, polyErrorf("NewIdentity",
			fmt.Errorf("%w: rhs has %d terms, want exactly 1", ErrMalformedIdentity, len(rhs.Terms)))
	}
	return Identity[T]{
		lhs:     lhs.Clone(),
		rhs:     rhs.Clone(),
		factors: factors,
		rhsTerm: rhs.Terms[0].clone(),
	}, nil
}

// LHS returns the left-hand side of the identity.
func (id Identity[T]) LHS() Polynomial[T] { return id.lhs }

// RHS returns the right-hand side of the identity.
func (id Identity[T]) RHS() Polynomial[T] { return id.rhs }

// Factors returns the bare factors of the left-hand side, in term order.
func (id Identity[T]) Factors() []Factor[T] { return slices.Clone(id.factors) }

// String renders the identity as "lhs = rhs".
func (id Identity[T]) String() string { return id.lhs.String() + " = " + id.rhs.String() }

// SimplifyByIdentity validates lhs == rhs and applies it to p (see Identity.Simplify).
func (p Polynomial[T]) SimplifyByIdentity(lhs, rhs Polynomial[T], opts ...Option) (Polynomial[T], error) {
	id, err := NewIdentity(lhs, rhs)
	if err != nil {
		return Polynomial[T]{}, polyErrorf("SimplifyByIdentity", err)
	}
	return id.Simplify(p, opts...)
}

// Simplify rewrites every occurrence of term·factor_0 + … + term·factor_last
// in p into term·rhs, then repeats inside the reduced sub-polynomials.
//
// The result is (Σ_j (bucket_j)·factor_j) + rewritten terms + remainder,
// merged. It may hold Nested factors; call Expand for a flat sum.
//
// Errors:
//   - ErrOptionViolation for an invalid Option.
func (id Identity[T]) Simplify(p Polynomial[T], opts ...Option) (Polynomial[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Polynomial[T]{}, polyErrorf("Simplify", err)
	}
	return id.rewrite(p, 0, &o), nil
}

// rewrite is one level of the identity substitution.
func (id Identity[T]) rewrite(p Polynomial[T], depth int, o *SimplifyOptions) Polynomial[T] {
	collected, remainder := p.CollectBy(id.factors)

	var rewritten []Monomial[T]
	for i := 0; i < len(collected[0].Terms); {
		cur := collected[0].Terms[i]
		positions := make([]int, 0, len(collected)-1)
		for _, c := range collected[1:] {
			pos := slices.IndexFunc(c.Terms, cur.Equal)
			if pos < 0 {
				break
			}
			positions = append(positions, pos)
		}
		if len(positions) != len(collected)-1 {
			i++
			continue
		}

		// the pattern cur·lhs is present: remove one instance from every bucket
		collected[0].Terms = slices.Delete(collected[0].Terms, i, i+1)
		for j, pos := range positions {
			collected[j+1].Terms = slices.Delete(collected[j+1].Terms, pos, pos+1)
		}
		m := cur.Mul(id.rhsTerm)
		rewritten = append(rewritten, m)
		o.OnRewrite(depth, m)
	}

	if len(rewritten) > 0 && (o.MaxDepth == 0 || depth+1 < o.MaxDepth) {
		for j := range collected {
			if !collected[j].IsZero() {
				collected[j] = id.rewrite(collected[j], depth+1, o)
			}
		}
	}

	out := make([]Monomial[T], 0, len(collected)+len(rewritten)+len(remainder.Terms))
	for j, c := range collected {
		if c.IsZero() {
			continue
		}
		fs := []Factor[T]{{Base: NestedBase(c.MergeTerms()), Power: 1}, id.factors[j]}
		out = append(out, Monomial[T]{Coeff: 1, Factors: mergeFactors(fs)})
	}
	out = append(out, rewritten...)
	out = append(out, remainder.Terms...)
	return Polynomial[T]{Terms: mergeTerms(out)}
}
