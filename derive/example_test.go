// SPDX-License-Identifier: MIT
package derive_test

import (
	"fmt"

	"github.com/katalvlaran/mathguru/derive"
	"github.com/katalvlaran/mathguru/poly"
)

// ExampleSimplifyUnitQuaternion reduces a polynomial that contains the
// unit-norm constraint as a sub-sum.
func ExampleSimplifyUnitQuaternion() {
	names := []string{"w", "x", "y", "z"}
	p := derive.UnitNormConstraint[int](names...).Add(poly.Var[int]("t"))

	got, rep, err := derive.SimplifyUnitQuaternion(p, names)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(got)
	fmt.Println(rep)
	// Output:
	// 1 + t
	// 5 → 2 → 2 → 2
}
