package poly_test

import (
	"testing"

	"github.com/katalvlaran/mathguru/poly"
	"github.com/stretchr/testify/require"
)

// TestExtractCommonFactorsSingleVariable: t^3 + t^2 + 3t = t·(t^2 + t + 3).
func TestExtractCommonFactorsSingleVariable(t *testing.T) {
	tv := v("t")
	p := tv.Pow(3).Add(tv.Pow(2)).Add(tv.Scale(3))

	common := p.ExtractCommonFactors()
	require.Equal(t, []poly.Factor[int]{sym("t", 1)}, common)
	require.Equal(t, "3 + t + t^2", p.String())
	requireCanonical(t, p)
}

// TestExtractCommonFactorsRoundTrip multiplies the factors back in.
func TestExtractCommonFactorsRoundTrip(t *testing.T) {
	x, y := v("x"), v("y")
	orig := x.Pow(2).Mul(y).Scale(2).
		Add(x.Mul(y.Pow(3)).Scale(4)).
		Add(x.Pow(3).Mul(y.Pow(2)))

	p := orig.Clone()
	common := p.ExtractCommonFactors()
	require.Equal(t, []poly.Factor[int]{sym("x", 1), sym("y", 1)}, common)
	require.Equal(t, "2x + x^2y + 4y^2", p.String())
	requireCanonical(t, p)
	requirePolyEqual(t, orig, p.Mul(poly.FromFactors(common...)))
}

// TestExtractCommonFactorsNone leaves p unchanged when the first term shares nothing.
func TestExtractCommonFactorsNone(t *testing.T) {
	a, b, cc, d := v("a"), v("b"), v("c"), v("d")
	p := a.Add(b.Mul(cc)).Add(b.Mul(d))
	before := p.Clone()

	require.Empty(t, p.ExtractCommonFactors())
	requirePolyEqual(t, before, p)
}

// TestExtractCommonFactorsEdgeCases covers zero, constants and a single term.
func TestExtractCommonFactorsEdgeCases(t *testing.T) {
	z := poly.Zero[int]()
	require.Nil(t, z.ExtractCommonFactors())

	k := c(5)
	require.Empty(t, k.ExtractCommonFactors())
	require.Equal(t, "5", k.String())

	// a single term gives up its positive powers only
	m := poly.FromFactors(sym("x", 2), sym("y", -1)).Scale(3)
	common := m.ExtractCommonFactors()
	require.Equal(t, []poly.Factor[int]{sym("x", 2)}, common)
	require.Equal(t, "3y^-1", m.String())
}

// TestExtractCommonFactorsLeavesConstant: x + 2xy = x·(1 + 2y).
func TestExtractCommonFactorsLeavesConstant(t *testing.T) {
	x, y := v("x"), v("y")
	p := x.Add(x.Mul(y).Scale(2))
	require.Equal(t, []poly.Factor[int]{sym("x", 1)}, p.ExtractCommonFactors())
	require.Equal(t, "1 + 2y", p.String())
}

// TestFromFactors builds 1·Πfactors in canonical form.
func TestFromFactors(t *testing.T) {
	p := poly.FromFactors(sym("y", 1), sym("x", 1), sym("x", 1))
	require.Equal(t, "x^2y", p.String())
	require.Equal(t, "1", poly.FromFactors[int]().String())
}
