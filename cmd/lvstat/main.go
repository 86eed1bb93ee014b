// SPDX-License-Identifier: MIT

// Command lvstat runs the statistics API server and offers the numeric
// packages on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstat/internal/config"
	"github.com/katalvlaran/lvstat/internal/logging"
)

// app is the state shared by all subcommands.
type app struct {
	cfg    config.Config
	envErr error
	log    *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	a.envErr = a.cfg.FromEnv(config.EnvPrefix)

	rootCmd := &cobra.Command{
		Use:           "lvstat",
		Short:         "Statistical numerics: regression, distributions, matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.envErr != nil {
				return a.envErr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			log, err := logging.New(a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return err
			}
			a.log = log

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (json, console)")

	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(regressCmd(a))
	rootCmd.AddCommand(distCmd(a))
	rootCmd.AddCommand(describeCmd(a))
	rootCmd.AddCommand(invertCmd(a))

	return rootCmd
}
