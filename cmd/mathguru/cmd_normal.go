// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/mathguru/derive"
	"github.com/katalvlaran/mathguru/matrix"
	"github.com/katalvlaran/mathguru/poly"
	"github.com/spf13/cobra"
)

// newNormalCmd derives (n1 × n2)·n3 for the plane normals of the configured
// point pairs and reduces it with the unit-norm constraint.
func newNormalCmd(a *app) *cobra.Command {
	var (
		printPoly bool
		terms     bool
	)

	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Derive and reduce the triple product of three plane normals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.cfg.Quaternion
			q := derive.QuatOf[int](names[0], names[1], names[2], names[3])

			start := time.Now()
			normals := make([]matrix.Vector[poly.Polynomial[int]], 0, len(a.cfg.Normal.Pairs))
			for _, pair := range a.cfg.Normal.Pairs {
				n, err := derive.PlaneNormal(pair.Rotated, pair.Fixed, q)
				if err != nil {
					return err
				}
				normals = append(normals, n)
			}
			res, err := derive.TripleProduct(normals[0], normals[1], normals[2])
			if err != nil {
				return err
			}
			a.logger.Info("triple product derived",
				slog.Int("terms", res.Len()),
				slog.Duration("elapsed", time.Since(start)))

			rewrites := 0
			sim, rep, err := derive.SimplifyUnitQuaternion(res, names,
				poly.WithMaxDepth(a.cfg.Simplify.MaxDepth),
				poly.WithOnRewrite(func(depth int, m fmt.Stringer) {
					rewrites++
					a.logger.Debug("rewrite", slog.Int("depth", depth), slog.String("term", m.String()))
				}))
			if err != nil {
				return err
			}
			a.logger.Info("triple product reduced",
				slog.Any("report", rep),
				slog.Int("rewrites", rewrites),
				slog.Duration("elapsed", time.Since(start)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "terms: %s\n", rep)
			if printPoly {
				fmt.Fprintf(out, "(n1×n2)·n3 = %s\n", sim)
			}
			if terms {
				writeTerms(out, sim)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&printPoly, "print", false, "print the reduced polynomial")
	cmd.Flags().BoolVar(&terms, "terms", false, "print the grouped terms with nested sums named p_{i}")

	return cmd
}

// writeTerms prints p one term per line, replacing every nested sub-sum of
// term i with the symbol p_{i}, then lists the sub-sums.
func writeTerms[T poly.Coefficient](w io.Writer, p poly.Polynomial[T]) {
	var subs []string
	for i, t := range p.Terms {
		name := fmt.Sprintf("p_{%d}", i+1)
		fs := make([]poly.Factor[T], len(t.Factors))
		for j, f := range t.Factors {
			if f.Base.IsNested() {
				subs = append(subs, fmt.Sprintf("%s = %s", name, f.Base.Poly))
				f = poly.NewFactor(poly.SymBase[T](poly.Symbol(name)), f.Power)
			}
			fs[j] = f
		}
		fmt.Fprintln(w, poly.NewMonomial(t.Coeff, fs...))
	}
	for _, s := range subs {
		fmt.Fprintln(w, s)
	}
}
