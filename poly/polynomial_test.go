package poly_test

import (
	"testing"

	"github.com/katalvlaran/mathguru/poly"
	"github.com/stretchr/testify/require"
)

// TestConstructors covers the zero value, constants and single symbols.
func TestConstructors(t *testing.T) {
	require.True(t, poly.Zero[int]().IsZero())
	require.True(t, c(0).IsZero()) // zero constant has no terms
	require.True(t, c(4).IsConstant())
	require.False(t, c(4).IsZero())
	require.True(t, v("x").IsSymbol())
	require.False(t, v("x").Scale(2).IsConstant())
	require.Equal(t, 1, v("x").Len())

	require.True(t, poly.FromMonomial(poly.NewMonomial[int](0, sym("x", 1))).IsZero())
	requirePolyEqual(t, v("x"), poly.FromSymbol[int]("x"))
}

// TestAddCombinesLikeTerms sums coefficients and drops cancelled terms.
func TestAddCombinesLikeTerms(t *testing.T) {
	x, y := v("x"), v("y")
	p := x.Add(y).Add(x)
	require.Equal(t, "2x + y", p.String())
	requireCanonical(t, p)

	q := p.Sub(x.Scale(2))
	requirePolyEqual(t, y, q)
	require.True(t, p.Sub(p).IsZero())
}

// TestMulDistributes checks (x + 1)(x - 1) == x^2 - 1.
func TestMulDistributes(t *testing.T) {
	x := v("x")
	got := x.Add(c(1)).Mul(x.Sub(c(1)))
	require.Equal(t, "- 1 + x^2", got.String())
	requireCanonical(t, got)
	require.True(t, got.Mul(poly.Zero[int]()).IsZero())
}

// TestRingLaws verifies the ring axioms on a few sample polynomials.
func TestRingLaws(t *testing.T) {
	x, y, z := v("x"), v("y"), v("z")
	samples := []P{
		c(0), c(1), c(-3), x, x.Add(y), x.Mul(y).Sub(z.Scale(2)),
		x.Apply("sin").Add(c(2)), poly.FromFactors(nested(x.Add(z), 1), sym("y", 2)),
	}
	one := c(1)
	for _, p := range samples {
		requirePolyEqual(t, p, p.Add(poly.Zero[int]()))
		requirePolyEqual(t, p, p.Mul(one))
		require.True(t, p.Add(p.Neg()).IsZero(), "p - p for %q", p)
		requireCanonical(t, p)
		for _, q := range samples {
			requirePolyEqual(t, p.Add(q), q.Add(p))
			requirePolyEqual(t, p.Mul(q), q.Mul(p))
			for _, r := range samples {
				requirePolyEqual(t, p.Add(q).Add(r), p.Add(q.Add(r)))
				requirePolyEqual(t, p.Mul(q.Add(r)), p.Mul(q).Add(p.Mul(r)))
			}
		}
	}
}

// TestMergeTermsIdempotent merges a hand-built non-canonical polynomial.
func TestMergeTermsIdempotent(t *testing.T) {
	raw := P{Terms: []poly.Monomial[int]{
		{Coeff: 2, Factors: []poly.Factor[int]{sym("y", 1)}},
		{Coeff: 1, Factors: []poly.Factor[int]{sym("x", 1)}},
		{Coeff: -2, Factors: []poly.Factor[int]{sym("y", 1)}},
		{Coeff: 5},
	}}
	once := raw.MergeTerms()
	require.Equal(t, "5 + x", once.String())
	requirePolyEqual(t, once, once.MergeTerms())
	require.Len(t, raw.Terms, 4) // input untouched
}

// TestPow covers repeated squaring, the zero exponent and negative exponents.
func TestPow(t *testing.T) {
	x := v("x")
	p := x.Add(c(1))

	require.Equal(t, "1 + 2x + x^2", p.Pow(2).String())
	require.Equal(t, "1 + 3x + 3x^2 + x^3", p.Pow(3).String())
	require.Equal(t, "1", p.Pow(0).String())
	requirePolyEqual(t, p, p.Pow(1))
	require.Equal(t, "(1 + x)^-1", p.Pow(-1).String())
	require.Equal(t, "x^2", x.Pow(2).String())
}

// TestArithmeticDoesNotAlias checks that results never share term storage
// in a way that lets one value mutate another.
func TestArithmeticDoesNotAlias(t *testing.T) {
	x, y := v("x"), v("y")
	p := x.Add(y)
	q := p.Add(c(0))
	q.Terms[0].Coeff = 9
	require.Equal(t, "x + y", p.String())

	r := p.Clone()
	r.Expand()
	r.Terms[1].Coeff = 7
	require.Equal(t, "x + y", p.String())
}
