// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command decfast is a calculator for the fast decimal types.
//
// Usage:
//
//	decfast eval [--class 32|64|128] [--mode MODE] LHS OP RHS
//	decfast limits [--class 32|64|128]
//	decfast classify [--class 32|64|128] VALUE
//
// The rounding mode defaults to the value of the DECFAST_MODE environment
// variable, or ToNearestAway if it is not set.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// modeEnv names the environment variable used when --mode is not set.
const modeEnv = "DECFAST_MODE"

type config struct {
	class   classValue
	mode    modeValue
	verbose bool
	logger  *zap.Logger
}

func newConfig() *config {
	return &config{class: 64, mode: modeValue(defaultMode)}
}

func (cfg *config) addFlags(fs *pflag.FlagSet) {
	fs.Var(&cfg.class, "class", "decimal class: 32, 64 or 128")
	fs.Var(&cfg.mode, "mode", "rounding mode (env "+modeEnv+")")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log evaluation details")
}

// setup resolves the environment fallback and builds the logger.
func (cfg *config) setup(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("mode") {
		if s, ok := os.LookupEnv(modeEnv); ok && s != "" {
			if err := cfg.mode.Set(s); err != nil {
				return err
			}
		}
	}
	if cfg.logger != nil {
		return nil
	}
	var err error
	if cfg.verbose {
		cfg.logger, err = zap.NewDevelopment()
	} else {
		cfg.logger, err = zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
	}
	return err
}

func newRootCmd(cfg *config) *cobra.Command {
	root := &cobra.Command{
		Use:           "decfast",
		Short:         "fast IEEE-754 decimal calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.setup(cmd)
		},
	}
	cfg.addFlags(root.PersistentFlags())
	root.AddCommand(
		newEvalCmd(cfg),
		newLimitsCmd(cfg),
		newClassifyCmd(cfg),
	)
	return root
}

func main() {
	cfg := newConfig()
	root := newRootCmd(cfg)
	err := root.Execute()
	if cfg.logger != nil {
		_ = cfg.logger.Sync()
	}
	if err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
