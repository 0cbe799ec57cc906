// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mathguru/derive"
	"github.com/katalvlaran/mathguru/matrix"
	"github.com/katalvlaran/mathguru/poly"
	"github.com/spf13/cobra"
)

// newRodriguesCmd rotates a planar point about an axis by a symbolic angle.
func newRodriguesCmd(a *app) *cobra.Command {
	var (
		axis  string
		theta string
		point string
		perp  bool
		check string
	)

	cmd := &cobra.Command{
		Use:   "rodrigues",
		Short: "Rotate a planar point about an axis with Rodrigues' formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var n matrix.Vector[poly.Polynomial[int]]
			switch axis {
			case "spherical":
				n = derive.SphericalAxis(poly.Var[int]("ψ"), poly.Var[int]("ω"))
			case "generic":
				n = matrix.NewVector3(poly.Var[int]("u"), poly.Var[int]("v"), poly.Var[int]("w"))
			default:
				return fmt.Errorf("unknown axis %q, want spherical or generic", axis)
			}

			sin, cos := derive.SinCos(poly.Var[int](theta))
			p := derive.PlanarPoint[int](point)
			rotate := derive.Rotate[int]
			if perp {
				rotate = derive.RotatePerp[int]
			}
			ra, err := rotate(p, n, cos, sin)
			if err != nil {
				return err
			}
			a.logger.Info("point rotated",
				slog.String("axis", axis),
				slog.Bool("perpendicular", perp),
				slog.String("point", p.String()))

			out := cmd.OutOrStdout()
			for i, c := range ra.Values() {
				fmt.Fprintf(out, "%c = %s\n", "xyz"[i], c)
			}
			if check == "" {
				return nil
			}

			// R(a) × b == −(b × R(a))
			b := derive.PlanarPoint[int](check)
			rab, err := ra.Cross(b)
			if err != nil {
				return err
			}
			bra, err := b.Cross(ra)
			if err != nil {
				return err
			}
			if !rab.Equal(bra.Neg()) {
				return fmt.Errorf("cross check failed for %s", check)
			}
			fmt.Fprintf(out, "check: R(%s)×%s == −(%s×R(%s))\n", point, check, check, point)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&axis, "axis", "spherical", "rotation axis: spherical (sinψcosω, sinψsinω, cosψ) or generic (u, v, w)")
	f.StringVar(&theta, "theta", "θ", "symbol of the rotation angle")
	f.StringVar(&point, "point", "a", "name of the planar point (name_x, name_y, 1)")
	f.BoolVar(&perp, "perp", false, "use the formula for a point perpendicular to the axis")
	f.StringVar(&check, "check", "", "verify anti-commutativity of the cross product with this planar point")

	return cmd
}
