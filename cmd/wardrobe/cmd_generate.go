// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/dataset"
	"github.com/tomtom215/wardrobe/internal/logging"
)

// Generation modes.
const (
	modeBalanced     = "balanced"
	modeHardNegative = "hard-negative"
)

// datasetFlags are the overrides shared by generate and pairs.
type datasetFlags struct {
	output  string
	samples int
	seed    int64
	ratio   float64
}

func (d *datasetFlags) bind(cmd *cobra.Command, defaultOutput string) {
	fs := cmd.Flags()
	fs.StringVarP(&d.output, "output", "o", defaultOutput, "output file, - for stdout")
	fs.IntVar(&d.samples, "samples", 0, "number of samples, overrides dataset.samples")
	fs.Int64Var(&d.seed, "seed", 0, "random seed, overrides dataset.seed")
	fs.Float64Var(&d.ratio, "ratio", 0, "target positive ratio, overrides dataset.target_ratio")
}

// datasetConfig layers config file values and changed flags over the defaults.
func (d *datasetFlags) datasetConfig(cmd *cobra.Command, cfg *config.DatasetConfig) *dataset.Config {
	dc := dataset.DefaultConfig()
	dc.Samples = cfg.Samples
	dc.TargetRatio = cfg.TargetRatio
	dc.MaxAttempts = cfg.MaxAttempts
	dc.Seed = cfg.Seed
	dc.ReportEvery = cfg.ReportEvery
	dc.FullBodyProb = cfg.FullBodyProb

	fs := cmd.Flags()
	if fs.Changed("samples") {
		dc.Samples = d.samples
	}
	if fs.Changed("seed") {
		dc.Seed = d.seed
	}
	if fs.Changed("ratio") {
		dc.TargetRatio = d.ratio
	}
	return dc
}

// openOutput returns stdout for "-" and a created file otherwise.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var (
		flags     datasetFlags
		mode      string
		noShuffle bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a labeled outfit dataset as a JSON array",
		Long: `Generates {context, outfit, label} samples labeled Positive or Negative
by the outfit rules.

  balanced       random outfits steered toward --ratio positives
  hard-negative  one good outfit per context plus minimal edits that break one rule`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode != modeBalanced && mode != modeHardNegative {
				return fmt.Errorf("unknown mode %q: want %s or %s", mode, modeBalanced, modeHardNegative)
			}
			dc := flags.datasetConfig(cmd, &opts.cfg.Dataset)
			dc.Shuffle = !noShuffle
			return runGenerate(cmd, opts.cfg, dc, mode, flags.output)
		},
	}
	flags.bind(cmd, "dataset.json")
	cmd.Flags().StringVar(&mode, "mode", modeBalanced, "balanced or hard-negative")
	cmd.Flags().BoolVar(&noShuffle, "no-shuffle", false, "keep hard-negative samples in generation order")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, dc *dataset.Config, mode, output string) error {
	ctx := cmd.Context()
	logger := logging.Logger()

	index, err := loadCatalog(ctx, &cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	gen, err := dataset.NewGenerator(dc, index, logger)
	if err != nil {
		return err
	}

	out, err := openOutput(cmd, output)
	if err != nil {
		return err
	}
	defer out.Close()

	sink := dataset.NewJSONArrayWriter[dataset.Sample](out)
	var report dataset.Report
	if mode == modeHardNegative {
		report, err = gen.RunHardNegatives(ctx, sink)
	} else {
		report, err = gen.Run(ctx, sink)
	}
	if cerr := sink.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("finish output: %w", cerr)
	}
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Info().
		Str("mode", mode).
		Str("output", output).
		Int("generated", report.Generated).
		Int("positive", report.Positive).
		Int("negative", report.Negative).
		Int("skipped", report.Skipped).
		Dur("duration", report.Duration).
		Msg("dataset written")
	return nil
}
