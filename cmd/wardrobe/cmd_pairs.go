// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/dataset"
	"github.com/tomtom215/wardrobe/internal/logging"
)

func newPairsCmd(opts *globalOptions) *cobra.Command {
	var flags datasetFlags

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Generate chosen/rejected preference pairs as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := logging.Logger()

			index, err := loadCatalog(ctx, &opts.cfg.Catalog, logger)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			gen, err := dataset.NewGenerator(flags.datasetConfig(cmd, &opts.cfg.Dataset), index, logger)
			if err != nil {
				return err
			}

			out, err := openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			defer out.Close()

			sink := dataset.NewJSONLWriter[dataset.Pair](out)
			report, err := gen.RunPairs(ctx, sink)
			if cerr := sink.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("flush output: %w", cerr)
			}
			if err != nil {
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			logger.Info().
				Str("output", flags.output).
				Int("pairs", report.Generated).
				Int("skipped", report.Skipped).
				Dur("duration", report.Duration).
				Msg("pairs written")
			return nil
		},
	}
	flags.bind(cmd, "pairs.jsonl")
	return cmd
}
