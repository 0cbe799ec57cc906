// Package poly: read-only traversal helpers.
package poly

import "golang.org/x/exp/slices"

// Symbols returns the distinct symbols reachable from p, including those
// inside derived parameters and nested sub-polynomials, sorted by name.
func (p Polynomial[T]) Symbols() []Symbol {
	seen := make(map[Symbol]struct{})
	p.collectSymbols(seen)
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func (p Polynomial[T]) collectSymbols(seen map[Symbol]struct{}) {
	for _, t := range p.Terms {
		for _, f := range t.Factors {
			if f.Base.Kind == KindSym {
				seen[f.Base.Sym] = struct{}{}
				continue
			}
			f.Base.param().collectSymbols(seen)
		}
	}
}

// Bases returns the distinct top-level bases of p in canonical order.
func (p Polynomial[T]) Bases() []Base[T] {
	var out []Base[T]
	for _, t := range p.Terms {
		for _, f := range t.Factors {
			i, found := slices.BinarySearchFunc(out, f.Base, Base[T].Compare)
			if !found {
				out = slices.Insert(out, i, f.Base)
			}
		}
	}
	return out
}

// Depth returns the maximum nesting depth of p: 0 for a polynomial whose
// factors are all symbols, 1 + the depth of the deepest derived parameter or
// nested sub-polynomial otherwise.
func (p Polynomial[T]) Depth() int {
	d := 0
	for _, t := range p.Terms {
		for _, f := range t.Factors {
			if f.Base.Kind != KindSym {
				d = max(d, 1+f.Base.param().Depth())
			}
		}
	}
	return d
}
