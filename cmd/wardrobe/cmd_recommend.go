// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/validation"
)

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	var (
		closet []int
		occ    contextFlags
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Pick the best outfit from a closet",
		Example: `  wardrobe recommend --closet 15970,39386,59263,21379 \
    --event "Office Meeting" --temp 12 --condition Cloudy --gender Men`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.RecommendRequest{Closet: closet, ContextRequest: occ.request()}
			if verr := validation.ValidateStruct(&req); verr != nil {
				return verr
			}

			ctx := cmd.Context()
			logger := logging.Logger()
			index, err := loadCatalog(ctx, &opts.cfg.Catalog, logger)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			reranker, _, err := buildReranker(&opts.cfg.Reranker, logger)
			if err != nil {
				return err
			}
			engine, err := recommend.NewEngine(engineConfig(&opts.cfg.Recommend), index, reranker, logger)
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}

			var body interface{}
			resp, err := engine.Recommend(ctx, recommend.Request{
				RequestID: logging.GenerateRequestID(),
				Closet:    req.Closet,
				Context:   req.Context(),
			})
			switch {
			case errors.Is(err, recommend.ErrEmptyCandidateSet):
				body = &models.LegacyError{Error: err.Error()}
			case err != nil:
				return err
			default:
				body = resp
			}

			data, err := json.MarshalIndent(body, "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().IntSliceVar(&closet, "closet", nil, "comma-separated catalog ids (required)")
	occ.bind(cmd)
	return cmd
}
