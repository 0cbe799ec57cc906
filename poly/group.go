// SPDX-License-Identifier: MIT

// Package poly: grouping by a variable set, the converse of Expand.
package poly

import "golang.org/x/exp/slices"

// groupBucket collects the kept parts of all terms sharing one outside-factor sequence.
type groupBucket[T Coefficient] struct {
	outside []Factor[T]
	kept    []Monomial[T]
}

// GroupBy rewrites p in place so that terms sharing the same factors outside
// bases are combined into one term holding a Nested sub-polynomial:
//
//	a·x + b·x + c·y  --GroupBy(a, b)-->  (a + b)·x + c·y
//
// Each term is split into kept factors (base in bases, coefficient included)
// and outside factors. Buckets with a single term are emitted unchanged.
// Buckets with several terms become 1·(Σ kept)·outside; a bucket whose kept
// sum merges to zero is dropped. p is canonical on return.
func (p *Polynomial[T]) GroupBy(bases ...Base[T]) {
	if p.IsZero() {
		return
	}
	inSet := func(f Factor[T]) bool {
		return slices.ContainsFunc(bases, func(b Base[T]) bool { return b.Equal(f.Base) })
	}

	// buckets stay sorted by outside sequence, which fixes the output order
	var buckets []*groupBucket[T]
	for _, t := range p.Terms {
		kept, outside := t.split(inSet)
		i, found := slices.BinarySearchFunc(buckets, outside, func(b *groupBucket[T], key []Factor[T]) int {
			return compareFactors(b.outside, key)
		})
		if !found {
			buckets = slices.Insert(buckets, i, &groupBucket[T]{outside: outside})
		}
		buckets[i].kept = append(buckets[i].kept, kept)
	}

	out := make([]Monomial[T], 0, len(buckets))
	for _, b := range buckets {
		if len(b.kept) == 1 {
			m := b.kept[0]
			fs := make([]Factor[T], 0, len(m.Factors)+len(b.outside))
			fs = append(fs, m.Factors...)
			fs = append(fs, b.outside...)
			out = append(out, Monomial[T]{Coeff: m.Coeff, Factors: mergeFactors(fs)})
			continue
		}
		sub := Polynomial[T]{Terms: mergeTerms(b.kept)}
		if sub.IsZero() {
			continue
		}
		fs := make([]Factor[T], 0, len(b.outside)+1)
		fs = append(fs, Factor[T]{Base: NestedBase(sub), Power: 1})
		fs = append(fs, b.outside...)
		out = append(out, Monomial[T]{Coeff: 1, Factors: mergeFactors(fs)})
	}
	p.Terms = mergeTerms(out)
}

// SymBases returns the symbol bases for names, a convenience for GroupBy.
func SymBases[T Coefficient](names ...string) []Base[T] {
	out := make([]Base[T], len(names))
	for i, n := range names {
		out[i] = SymBase[T](Symbol(n))
	}
	return out
}
