// SPDX-License-Identifier: MIT
package derive_test

import (
	"log/slog"
	"testing"

	"github.com/katalvlaran/mathguru/derive"
	"github.com/katalvlaran/mathguru/poly"
	"github.com/stretchr/testify/require"
)

var qNames = []string{"q0", "q1", "q2", "q3"}

// sq returns name^2.
func sq(name string) P {
	v := poly.Var[int](name)
	return v.Mul(v)
}

func TestUnitNormConstraint(t *testing.T) {
	require.Equal(t, "q0^2 + q1^2 + q2^2 + q3^2", derive.UnitNormConstraint[int](qNames...).String())
	require.True(t, derive.UnitNormConstraint[int]().IsZero())
}

// TestSimplifyUnitQuaternion runs the three stages on small inputs.
func TestSimplifyUnitQuaternion(t *testing.T) {
	x, y := poly.Var[int]("x"), poly.Var[int]("y")
	a, b := poly.Var[int]("a"), poly.Var[int]("b")
	q0, q1 := poly.Var[int]("q0"), poly.Var[int]("q1")

	cases := []struct {
		name string
		in   P
		want string
		rep  derive.Report
	}{
		{
			name: "BareConstraint",
			in:   sq("q0").Add(sq("q1")).Add(sq("q2")).Add(sq("q3")).Add(x),
			want: "1 + x",
			rep:  derive.Report{Initial: 5, Simplified: 2, Expanded: 2, Grouped: 2},
		},
		{
			name: "ScaledConstraint",
			in:   a.Mul(derive.UnitNormConstraint[int](qNames...)).Add(b.Mul(q0).Mul(q1)),
			want: "a + bq0q1",
			rep:  derive.Report{Initial: 5, Simplified: 2, Expanded: 2, Grouped: 2},
		},
		{
			name: "GroupOnly",
			in:   x.Mul(q0).Add(x.Mul(q1)).Add(y),
			want: "x(q0 + q1) + y",
			rep:  derive.Report{Initial: 3, Simplified: 3, Expanded: 3, Grouped: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, rep, err := derive.SimplifyUnitQuaternion(tc.in, qNames)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
			require.Equal(t, tc.rep, rep)
		})
	}
}

func TestSimplifyUnitQuaternionErrors(t *testing.T) {
	p := poly.Var[int]("x")

	_, _, err := derive.SimplifyUnitQuaternion(p, nil)
	require.ErrorIs(t, err, poly.ErrMalformedIdentity)
	_, _, err = derive.SimplifyUnitQuaternion(p, []string{"q0", "q0"})
	require.ErrorIs(t, err, poly.ErrMalformedIdentity)
	_, rep, err := derive.SimplifyUnitQuaternion(p, qNames, poly.WithMaxDepth(-1))
	require.ErrorIs(t, err, poly.ErrOptionViolation)
	require.Equal(t, 1, rep.Initial)
}

func TestReportRendering(t *testing.T) {
	rep := derive.Report{Initial: 5, Simplified: 2, Expanded: 2, Grouped: 1}
	require.Equal(t, "5 → 2 → 2 → 1", rep.String())

	v := rep.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	attrs := v.Group()
	require.Len(t, attrs, 4)
	require.Equal(t, "initial", attrs[0].Key)
	require.Equal(t, int64(5), attrs[0].Value.Int64())
}
