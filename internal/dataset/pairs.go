// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

var pairStructures = [][]catalog.Part{
	{catalog.PartTop, catalog.PartBottom, catalog.PartShoes},
	{catalog.PartTop, catalog.PartBottom, catalog.PartOuter, catalog.PartShoes},
}

// PairPrompt renders the preference prompt for c.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func PairPrompt(c recommend.Context) string {
	return fmt.Sprintf("Context: %s\nWhich of the two outfits is better?\n", c.String())
}

// RunPairs makes Samples attempts at a preference pair. An attempt is skipped
// when the expected-usage pool cannot fill the structure or no item of
// another usage exists for the swapped part.
func (g *Generator) RunPairs(ctx context.Context, sink Sink[Pair]) (Report, error) {
	start := time.Now()
	report := Report{Requested: g.cfg.Samples}

	for i := 0; i < g.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return g.finish(report, start), err
		}
		report.Attempts++

		pair, ok := g.pair()
		if !ok {
			report.Skipped++
			metrics.DatasetSkipped.WithLabelValues("pair_unfilled").Inc()
			continue
		}
		if err := sink.Write(pair); err != nil {
			return g.finish(report, start), fmt.Errorf("write pair: %w", err)
		}
		report.Generated++
		metrics.DatasetSamples.WithLabelValues("pair").Inc()

		if g.cfg.ReportEvery > 0 && (i+1)%g.cfg.ReportEvery == 0 {
			g.logger.Info().
				Int("generated", report.Generated).
				Int("attempted", i+1).
				Msg("pair generation progress")
		}
	}

	report = g.finish(report, start)
	g.logger.Info().
		Int("generated", report.Generated).
		Int("skipped", report.Skipped).
		Dur("duration", report.Duration).
		Msg("pair generation complete")
	return report, nil
}

func (g *Generator) pair() (Pair, bool) {
	c := g.contexts.draw()
	expected := g.taxonomy.ExpectedUsage(c.Event)

	structure := pairStructures[g.rng.Intn(len(pairStructures))]
	chosen, ok := g.pickStructure(c.Gender, expected, structure)
	if !ok {
		return Pair{}, false
	}

	slots := chosen.Populated()
	slot := slots[g.rng.Intn(len(slots))]
	current, _ := chosen.Get(slot)
	item, _ := g.index.ByID(current)

	others := g.pools.otherUsages(expected)
	if len(others) == 0 {
		return Pair{}, false
	}
	usage := others[g.rng.Intn(len(others))]
	id, ok := g.sampler.Pick(g.pools.get(c.Gender, usage, item.Part))
	if !ok {
		return Pair{}, false
	}
	rejected := chosen.With(slot, id)

	return Pair{
		Prompt:   PairPrompt(c),
		Chosen:   recommend.Describe(g.index, chosen),
		Rejected: recommend.Describe(g.index, rejected),
	}, true
}
