// SPDX-License-Identifier: MIT
package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg    Config
	logger *slog.Logger
}

// newRootCmd wires the root command, its persistent flags and subcommands.
func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:           "mathguru",
		Short:         "Exact symbolic polynomial derivations",
		Long:          "mathguru derives rotation matrices, rotated vectors and plane normals\nas exact multivariate polynomials and reduces them with the unit-norm\nconstraint of the rotation quaternion.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			logger.Debug("configuration loaded", slog.String("path", configPath))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newRotationCmd(a),
		newRodriguesCmd(a),
		newNormalCmd(a),
	)

	return root
}
