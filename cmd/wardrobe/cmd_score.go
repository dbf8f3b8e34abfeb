// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/api"
	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/validation"
)

// slotFlags are the item ids of an explicit outfit; 0 leaves a slot empty.
type slotFlags struct {
	top, bottom, outer, shoes, fullBody int
}

func (s *slotFlags) outfit() recommend.Outfit {
	var o recommend.Outfit
	for slot, id := range map[recommend.Slot]int{
		recommend.SlotTop:      s.top,
		recommend.SlotBottom:   s.bottom,
		recommend.SlotOuter:    s.outer,
		recommend.SlotShoes:    s.shoes,
		recommend.SlotFullBody: s.fullBody,
	} {
		if id > 0 {
			o = o.With(slot, id)
		}
	}
	return o
}

func newScoreCmd(opts *globalOptions) *cobra.Command {
	var (
		slots  slotFlags
		occ    contextFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Show the deterministic score breakdown of one outfit",
		Example: `  wardrobe score --top 15970 --bottom 39386 --shoes 21379 --event Party --temp 25`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.ScoreRequest{Outfit: slots.outfit(), ContextRequest: occ.request()}
			if verr := validation.ValidateStruct(&req); verr != nil {
				return verr
			}
			if req.Outfit.IsEmpty() {
				return fmt.Errorf("name at least one item with --top, --bottom, --outer, --shoes or --full-body")
			}

			index, err := loadCatalog(cmd.Context(), &opts.cfg.Catalog, logging.Logger())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			scorer := recommend.NewScorer(index, index.Taxonomy())
			resp, err := api.ScoreOutfit(scorer, index, req.Context(), req.Outfit)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("encode response: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return printScore(cmd.OutOrStdout(), req.Context(), resp)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&slots.top, "top", 0, "top item id")
	fs.IntVar(&slots.bottom, "bottom", 0, "bottom item id")
	fs.IntVar(&slots.outer, "outer", 0, "outer layer item id")
	fs.IntVar(&slots.shoes, "shoes", 0, "shoes item id")
	fs.IntVar(&slots.fullBody, "full-body", 0, "full-body item id")
	fs.BoolVar(&asJSON, "json", false, "print the response as JSON")
	occ.bind(cmd)
	return cmd
}

//nolint:gocritic // hugeParam: Context passed by value for immutability
func printScore(out io.Writer, c recommend.Context, resp *models.ScoreResponse) error {
	validity := "valid"
	if !resp.Breakdown.Valid {
		validity = "invalid skeleton"
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Context:\t%s\n", c.String())
	fmt.Fprintf(w, "Outfit:\t%s\n", resp.Description)
	fmt.Fprintf(w, "Score:\t%d (%s)\n", resp.Score, validity)
	fmt.Fprintf(w, "Expected usage:\t%s\n", resp.ExpectedUsage)
	fmt.Fprintf(w, "Suitable seasons:\t%s\n", strings.Join(resp.SuitableSeasons, ", "))
	fmt.Fprintf(w, "Explanation:\t%s\n", resp.Explanation)
	if len(resp.Breakdown.Contributions) > 0 {
		fmt.Fprintf(w, "\nRule\tPoints\n")
		fmt.Fprintf(w, "----\t------\n")
		for _, contrib := range resp.Breakdown.Contributions {
			fmt.Fprintf(w, "%s\t%+d\n", contrib.Rule, contrib.Points)
		}
	}
	return w.Flush()
}
