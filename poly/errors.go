// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// The algebra itself is total over canonical input; errors only surface at
// the validated entry points (identity construction and option parsing).
// Callers match them with errors.Is; call sites wrap them with context.

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedIdentity is returned when an identity lhs == rhs does not
	// have the shape required by SimplifyByIdentity: lhs must be a non-zero
	// sum of terms, each a single bare factor with coefficient 1, and rhs
	// must be exactly one monomial.
	ErrMalformedIdentity = errors.New("poly: malformed identity")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (for example a negative recursion depth).
	ErrOptionViolation = errors.New("poly: invalid option supplied")
)

// polyErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
