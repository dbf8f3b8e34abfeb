// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalOptions is shared by every subcommand. cfg is set before RunE.
type globalOptions struct {
	configPath  string
	catalogPath string
	logLevel    string
	cfg         *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "wardrobe",
		Short: "Context-aware outfit recommendation and dataset generation",
		Long: "Wardrobe picks the most appropriate outfit from a closet for an event,\n" +
			"temperature and weather, and generates labeled outfit datasets.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: $CONFIG_PATH, ./config.yaml, /etc/wardrobe/config.yaml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "catalog file, overrides catalog.path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides logging.level")

	root.AddCommand(
		newServeCmd(opts),
		newGenerateCmd(opts),
		newPairsCmd(opts),
		newRecommendCmd(opts),
		newScoreCmd(opts),
	)
	return root
}

// load reads the configuration, applies flag overrides and initializes logging.
// Logs go to stderr so stdout stays clean for generated data.
func (o *globalOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	o.cfg = cfg

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
	return nil
}
