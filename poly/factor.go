// SPDX-License-Identifier: MIT

// Package poly: common-factor extraction.
//
// Only factors of the FIRST term are candidates. A factor missing from the
// first term but shared by all the others is never detected; callers rely on
// the exact factor set returned, so this stays as is.
package poly

// ExtractCommonFactors divides every term of p by each monomial factor common
// to all terms and returns the extracted factors in discovery order.
// p is rewritten in place and left canonical. The zero polynomial yields nil.
//
// For every factor position of the first term, the minimum power of that
// base across all terms is computed (a term lacking the base short-circuits
// it to 0). A positive minimum is recorded and divided out of every term.
// The position only advances when nothing was extracted, because extraction
// may shrink or remove the factor under the cursor.
func (p *Polynomial[T]) ExtractCommonFactors() []Factor[T] {
	if p.IsZero() {
		return nil
	}
	terms := p.Clone().Terms

	var common []Factor[T]
	idx := 0
	for idx < len(terms[0].Factors) {
		cand := terms[0].Factors[idx]
		least := cand.Power
		for _, t := range terms[1:] {
			least = min(least, t.PowerOf(cand.Base))
			if least <= 0 {
				break
			}
		}
		if least <= 0 {
			idx++
			continue
		}

		f := Factor[T]{Base: cand.Base, Power: least}
		for i, t := range terms {
			// succeeds by construction of least
			terms[i], _ = t.Extract(f)
		}
		common = append(common, f)
	}

	// dividing by factors of unequal power can reorder terms
	p.Terms = mergeTerms(terms)
	return common
}

// FromFactors returns the single-term polynomial 1·Πfactors, the inverse
// companion of ExtractCommonFactors.
func FromFactors[T Coefficient](factors ...Factor[T]) Polynomial[T] {
	return FromMonomial(NewMonomial[T](1, factors...))
}
