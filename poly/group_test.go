package poly_test

import (
	"testing"

	"github.com/katalvlaran/mathguru/poly"
	"github.com/stretchr/testify/require"
)

// TestGroupBy: a·x + b·x + c·y grouped by {a, b} gives c·y + x·(a + b).
func TestGroupBy(t *testing.T) {
	a, b, cc, x, y := v("a"), v("b"), v("c"), v("x"), v("y")
	orig := a.Mul(x).Add(b.Mul(x)).Add(cc.Mul(y))

	p := orig.Clone()
	p.GroupBy(poly.SymBases[int]("a", "b")...)
	require.Equal(t, "cy + x(a + b)", p.String())
	require.Equal(t, 2, p.Len())
	requireCanonical(t, p)

	p.Expand()
	requirePolyEqual(t, orig, p)
}

// TestGroupBySingleton leaves a term alone when nothing shares its outside factors.
func TestGroupBySingleton(t *testing.T) {
	a, x := v("a"), v("x")
	p := a.Mul(x).Scale(3)
	p.GroupBy(poly.SymBase[int]("a"))
	require.Equal(t, "3ax", p.String())
	require.Zero(t, p.Depth())
}

// TestGroupByCoefficients keeps coefficients inside the grouped sum.
func TestGroupByCoefficients(t *testing.T) {
	a, b, x := v("a"), v("b"), v("x")
	// 2ax - bx + 5
	p := a.Mul(x).Scale(2).Sub(b.Mul(x)).Add(c(5))
	p.GroupBy(poly.SymBases[int]("a", "b")...)
	require.Equal(t, "5 + x(2a - b)", p.String())
}

// TestGroupByCancellingBucket drops a bucket whose grouped sum is zero.
func TestGroupByCancellingBucket(t *testing.T) {
	a, x, y := v("a"), v("x"), v("y")
	// x - x arrives unmerged, so its bucket sums to zero
	p := P{Terms: []poly.Monomial[int]{
		poly.NewMonomial(1, sym("x", 1)),
		poly.NewMonomial(-1, sym("x", 1)),
		poly.NewMonomial(1, sym("y", 1)),
	}}
	p.GroupBy(poly.SymBase[int]("a"))
	requirePolyEqual(t, y, p)

	q := a.Add(x)
	q.GroupBy()
	require.Equal(t, "a + x", q.String())
}

// TestGroupByZero is a no-op on the zero polynomial.
func TestGroupByZero(t *testing.T) {
	z := poly.Zero[int]()
	z.GroupBy(poly.SymBase[int]("x"))
	require.True(t, z.IsZero())
}
