// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command blade loads, checks and watches scene and mesh assets
// on a headless device.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/blade/base/logx"
	"cogentcore.org/blade/config"
	"cogentcore.org/blade/gpu/headless"
	"cogentcore.org/blade/load"
	"github.com/spf13/cobra"
)

var (
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blade",
	Short: "Scene and mesh asset loader",
	Long: `blade loads scene descriptions and binary mesh assets onto a
headless device, reporting what was built or why loading failed.

Settings are read from blade.toml in the current directory (or the file
given by --config) and can be overridden by BLADE_* environment variables.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default "+config.DefaultFile+")")
	rootCmd.AddCommand(configCmd, loadCmd, checkCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and sets up logging for all commands.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	if err := logx.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	logx.SetOutput(cmd.OutOrStdout(), -1)
	logger = logx.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	b, err := cfg.TOML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

// newContext returns a new loading session on a new headless device,
// for the configured asset root.
func newContext() (*load.Context, *headless.Device, error) {
	dv := headless.New()
	ctx, err := load.NewContext(os.DirFS(cfg.AssetRoot), dv)
	if err != nil {
		return nil, nil, fmt.Errorf("blade: %w", err)
	}
	ctx.Logger = logger
	ctx.AttribPrefix = cfg.AttribPrefix
	return ctx, dv, nil
}
