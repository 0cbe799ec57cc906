package poly_test

import (
	"testing"

	"github.com/katalvlaran/mathguru/poly"
	"github.com/stretchr/testify/require"
)

// TestPolynomialString checks the infix rendering contract.
func TestPolynomialString(t *testing.T) {
	x, y, z, theta := v("x"), v("y"), v("z"), v("θ")
	literal := P{Terms: []poly.Monomial[int]{
		{Coeff: -1, Factors: []poly.Factor[int]{sym("x", 1)}},
		{Coeff: 3},
	}}

	cases := []struct {
		name string
		p    P
		want string
	}{
		{"LeadingNegative", literal, "- x + 3"},
		{"Canonical", c(3).Sub(x), "3 - x"},
		{"Zero", poly.Zero[int](), "0"},
		{"NegativeConstant", c(-4), "- 4"},
		{"UnitConstant", c(1), "1"},
		{"PowerAndCoefficient", x.Pow(2).Scale(2).Add(y), "2x^2 + y"},
		{"NegativePower", poly.FromFactors(sym("x", -1)), "x^-1"},
		{"DerivedSymbolParam", theta.Apply("sin"), "sinθ"},
		{"DerivedPower", theta.Apply("sin").Pow(2), "sin^2θ"},
		{"DerivedCompoundParam", x.Add(y).Apply("cos"), "cos(x + y)"},
		{"DerivedCompoundPower", x.Add(y).Apply("cos").Pow(3), "cos^3(x + y)"},
		{"NestedCompound", poly.FromFactors(sym("z", 1), nested(x.Add(y), 1)), "z(x + y)"},
		{"NestedSymbol", poly.FromFactors(nested(z, 1)).Scale(2), "2z"},
		{"NestedPower", poly.FromFactors(nested(x.Sub(y), 2)), "(x - y)^2"},
		{"MixedSigns", x.Neg().Sub(y).Add(z.Scale(5)), "- x - y + 5z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.p.String())
		})
	}
}

// TestMonomialAndFactorString renders the smaller building blocks.
func TestMonomialAndFactorString(t *testing.T) {
	require.Equal(t, "- 3x^2", poly.NewMonomial(-3, sym("x", 2)).String())
	require.Equal(t, "0", poly.NewMonomial(0, sym("x", 2)).String())
	require.Equal(t, "xy", poly.NewMonomial(1, sym("y", 1), sym("x", 1)).String())
	require.Equal(t, "x^3", sym("x", 3).String())
	require.Equal(t, "sin(2a)", poly.DerivedBase("sin", v("a").Scale(2)).String())
	require.Equal(t, "θ", poly.Symbol("θ").String())
	require.Equal(t, "nested", poly.KindNested.String())
}
