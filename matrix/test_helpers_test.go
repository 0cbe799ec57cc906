// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide an exact integer ring (zint) for numeric fixtures.
//   - Provide symbolic fixtures over poly.Polynomial[int].

package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/mathguru/matrix"
	"github.com/katalvlaran/mathguru/poly"
	"github.com/stretchr/testify/require"
)

// zint is int with the Ring methods.
type zint int

func (a zint) Add(b zint) zint { return a + b }
func (a zint) Sub(b zint) zint { return a - b }
func (a zint) Mul(b zint) zint { return a * b }
func (a zint) Neg() zint { return -a }
func (a zint) Zero() zint { return 0 }
func (a zint) IsZero() bool { return a == 0 }
func (a zint) Equal(b zint) bool { return a == b }
func (a zint) String() string { return strconv.Itoa(int(a)) }

// P is the symbolic element type.
type P = poly.Polynomial[int]

// compile-time check that both element types satisfy the contract
var (
	_ matrix.Matrix[zint] = (*matrix.Dense[zint])(nil)
	_ matrix.Matrix[P]    = (*matrix.Dense[P])(nil)
)

// ints converts literals to zint.
func ints(vals ...int) []zint {
	out := make([]zint, len(vals))
	for i, v := range vals {
		out[i] = zint(v)
	}
	return out
}

// MustDense builds an r×c integer matrix from row-major values or fails the test.
func MustDense(t *testing.T, r, c int, vals ...int) *matrix.Dense[zint] {
	t.Helper()
	m, err := matrix.NewDenseOf(r, c, ints(vals...)...)
	require.NoError(t, err)
	return m
}

// vec3 builds an integer 3-vector.
func vec3(x, y, z int) matrix.Vector[zint] {
	return matrix.NewVector3(zint(x), zint(y), zint(z))
}

// syms returns one symbol polynomial per name.
func syms(names ...string) []P {
	out := make([]P, len(names))
	for i, n := range names {
		out[i] = poly.Var[int](n)
	}
	return out
}

// symQuat returns the quaternion whose components are the given symbols.
func symQuat(a, b, c, d string) matrix.Quat[P] {
	s := syms(a, b, c, d)
	return matrix.NewQuat(s[0], s[1], s[2], s[3])
}

// symVec3 returns the 3-vector whose components are the given symbols.
func symVec3(x, y, z string) matrix.Vector[P] {
	s := syms(x, y, z)
	return matrix.NewVector3(s[0], s[1], s[2])
}
