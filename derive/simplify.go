// SPDX-License-Identifier: MIT

// Package derive: reduction under the unit-norm constraint.
package derive

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mathguru/poly"
)

// Report records the number of terms after each reduction stage.
type Report struct {
	Initial    int // terms of the input
	Simplified int // after SimplifyByIdentity, nested factors still folded
	Expanded   int // after Expand
	Grouped    int // after GroupBy on the constrained symbols
}

// LogValue renders the report as a slog group.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("initial", r.Initial),
		slog.Int("simplified", r.Simplified),
		slog.Int("expanded", r.Expanded),
		slog.Int("grouped", r.Grouped),
	)
}

// String renders the report as "initial → simplified → expanded → grouped".
func (r Report) String() string {
	return fmt.Sprintf("%d → %d → %d → %d", r.Initial, r.Simplified, r.Expanded, r.Grouped)
}

// UnitNormConstraint returns Σ name² over names.
func UnitNormConstraint[T poly.Coefficient](names ...string) poly.Polynomial[T] {
	out := poly.Zero[T]()
	for _, n := range names {
		v := poly.Var[T](n)
		out = out.Add(v.Mul(v))
	}

	return out
}

// SimplifyUnitQuaternion reduces p with Σ names² = 1, expands the result and
// groups it by the named symbols.
//
// Errors: poly.ErrMalformedIdentity if names is empty or repeats a name,
// poly.ErrOptionViolation for an invalid option.
func SimplifyUnitQuaternion[T poly.Coefficient](p poly.Polynomial[T], names []string, opts ...poly.Option) (poly.Polynomial[T], Report, error) {
	rep := Report{Initial: p.Len()}

	sim, err := p.SimplifyByIdentity(UnitNormConstraint[T](names...), poly.Const[T](1), opts...)
	if err != nil {
		return poly.Polynomial[T]{}, rep, fmt.Errorf("SimplifyUnitQuaternion: %w", err)
	}
	rep.Simplified = sim.Len()

	sim.Expand()
	rep.Expanded = sim.Len()

	sim.GroupBy(poly.SymBases[T](names...)...)
	rep.Grouped = sim.Len()

	return sim, rep, nil
}
