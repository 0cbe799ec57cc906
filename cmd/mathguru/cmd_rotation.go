// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mathguru/derive"
	"github.com/spf13/cobra"
)

// newRotationCmd prints the rotation matrix of the configured quaternion.
func newRotationCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Print the rotation matrix of a symbolic quaternion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Quaternion
			q := derive.QuatOf[int](n[0], n[1], n[2], n[3])
			m, err := derive.RotationMatrix(q)
			if err != nil {
				return err
			}
			a.logger.Info("rotation matrix derived", slog.String("quaternion", q.String()))

			out := cmd.OutOrStdout()
			for i := 0; i < m.Rows(); i++ {
				row, err := m.Row(i)
				if err != nil {
					return err
				}
				for j, e := range row.Values() {
					fmt.Fprintf(out, "R%d%d = %s\n", i+1, j+1, e)
				}
			}
			if !check {
				return nil
			}

			v := derive.PlanarPoint[int]("v")
			viaMatrix, err := m.MatVec(v)
			if err != nil {
				return err
			}
			viaQuat, err := q.Rotate(v)
			if err != nil {
				return err
			}
			if !viaMatrix.Equal(viaQuat) {
				return fmt.Errorf("rotation check failed: %s != %s", viaMatrix, viaQuat)
			}
			fmt.Fprintln(out, "check: R·v == q·v·q̄")

			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verify R·v against the quaternion rotation")

	return cmd
}
