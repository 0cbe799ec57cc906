// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathguru/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix[zint] {
		m, err := matrix.NewDense[zint](r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense[zint]

	tests := []struct {
		name    string
		a, b    matrix.Matrix[zint]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", zeros(2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatibleAndSquare covers the product and square guards.
func TestValidateMulCompatibleAndSquare(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 1, 1, 2, 3)

	require.NoError(t, matrix.ValidateMulCompatible[zint](a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible[zint](b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible[zint](a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare[zint](MustDense(t, 2, 2, 1, 2, 3, 4)))
	require.ErrorIs(t, matrix.ValidateSquare[zint](a), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare[zint](nil), matrix.ErrNilMatrix)
}

// TestValidateVecLen checks the exact-length guard.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(vec3(1, 2, 3), 3))
	require.ErrorIs(t, matrix.ValidateVecLen(vec3(1, 2, 3), 4), matrix.ErrDimensionMismatch)
}
