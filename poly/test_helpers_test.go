package poly_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/mathguru/poly"
)

// P is the polynomial type used throughout the tests.
type P = poly.Polynomial[int]

// v returns the symbol polynomial name.
func v(name string) P { return poly.Var[int](name) }

// c returns the constant polynomial n.
func c(n int) P { return poly.Const(n) }

// sym returns the factor name^power.
func sym(name string, power int) poly.Factor[int] {
	return poly.NewFactor(poly.SymBase[int](poly.Symbol(name)), power)
}

// nested returns the factor (p)^power.
func nested(p P, power int) poly.Factor[int] {
	return poly.NewFactor(poly.NestedBase(p), power)
}

// requirePolyEqual fails with a structural diff when got != want.
func requirePolyEqual(t *testing.T, want, got P) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("polynomial mismatch: want %q, got %q\n(-want +got):\n%s",
			want, got, cmp.Diff(want, got, cmpopts.EquateEmpty()))
	}
}

// requireCanonical checks the dual canonical-form invariant of p.
func requireCanonical(t *testing.T, p P) {
	t.Helper()
	for i, term := range p.Terms {
		if term.Coeff == 0 {
			t.Fatalf("term %d has zero coefficient: %v", i, p)
		}
		for j, f := range term.Factors {
			if f.Power == 0 {
				t.Fatalf("term %d factor %d has zero power: %v", i, j, p)
			}
			if j > 0 && term.Factors[j-1].Base.Compare(f.Base) >= 0 {
				t.Fatalf("term %d factors not strictly ascending: %v", i, p)
			}
		}
		if i > 0 && p.Terms[i-1].Like(term) {
			t.Fatalf("terms %d and %d are like terms: %v", i-1, i, p)
		}
		if i > 0 && p.Terms[i-1].Compare(term) >= 0 {
			t.Fatalf("terms %d and %d not ascending: %v", i-1, i, p)
		}
	}
}
