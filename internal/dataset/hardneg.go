// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// positiveStructures are the skeletons tried when searching for a positive.
var positiveStructures = [][]catalog.Part{
	{catalog.PartTop, catalog.PartBottom, catalog.PartShoes},
	{catalog.PartTop, catalog.PartBottom, catalog.PartOuter, catalog.PartShoes},
	{catalog.PartFullBody, catalog.PartShoes},
}

// RunHardNegatives writes scorer-approved positives each followed by the
// negatives mined from it, until Samples records exist. Labels are rationale
// sentences. With Shuffle the records are shuffled before writing.
func (g *Generator) RunHardNegatives(ctx context.Context, sink Sink[Sample]) (Report, error) {
	start := time.Now()
	report := Report{Requested: g.cfg.Samples}
	records := make([]Sample, 0, g.cfg.Samples)

	g.logger.Info().
		Int("samples", g.cfg.Samples).
		Int("threshold", g.cfg.PositiveThreshold).
		Int64("seed", g.cfg.Seed).
		Msg("starting hard-negative generation")

	misses := 0
	for len(records) < g.cfg.Samples {
		if err := ctx.Err(); err != nil {
			return g.finish(report, start), err
		}

		c := g.contexts.draw()
		positive, attempts, ok := g.findPositive(c)
		report.Attempts += attempts
		if !ok {
			report.Skipped++
			metrics.DatasetSkipped.WithLabelValues("no_positive").Inc()
			misses++
			if misses >= g.cfg.MaxAttempts {
				return g.finish(report, start), fmt.Errorf("%w: %d consecutive contexts", ErrNoPositive, misses)
			}
			continue
		}
		misses = 0

		records = append(records, Sample{
			Context: c,
			Outfit:  positive,
			Label:   recommend.Rationale(recommend.ViolationNone, c, nil),
		})
		g.count(&report, LabelPositive)

		negatives, err := g.miner.Mine(c, positive)
		if err != nil && !errors.Is(err, ErrNoNegative) {
			return g.finish(report, start), fmt.Errorf("mine negatives: %w", err)
		}
		for _, n := range negatives {
			if len(records) >= g.cfg.Samples {
				break
			}
			records = append(records, Sample{Context: c, Outfit: n.Outfit, Label: n.Rationale})
			g.count(&report, LabelNegative)
		}

		if g.cfg.ReportEvery > 0 && report.Positive%g.cfg.ReportEvery == 0 {
			g.logger.Info().
				Int("generated", len(records)).
				Int("requested", report.Requested).
				Int("positive", report.Positive).
				Int("negative", report.Negative).
				Msg("generation progress")
		}
	}

	if g.cfg.Shuffle {
		g.rng.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	}
	for i := range records {
		if err := sink.Write(records[i]); err != nil {
			return g.finish(report, start), fmt.Errorf("write sample: %w", err)
		}
	}

	report = g.finish(report, start)
	g.logger.Info().
		Int("generated", report.Generated).
		Int("positive", report.Positive).
		Int("negative", report.Negative).
		Int("skipped", report.Skipped).
		Dur("duration", report.Duration).
		Msg("hard-negative generation complete")
	return report, nil
}

// findPositive draws random skeletons from the gender pool until one scores
// above the threshold.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (g *Generator) findPositive(c recommend.Context) (recommend.Outfit, int, bool) {
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		structure := positiveStructures[g.rng.Intn(len(positiveStructures))]
		o, ok := g.pickStructure(c.Gender, "", structure)
		if !ok {
			continue
		}
		if g.scorer.Score(c, o) > g.cfg.PositiveThreshold {
			return o, attempt, true
		}
	}
	return recommend.Outfit{}, g.cfg.MaxAttempts, false
}

// pickStructure fills each part with a uniform item of that part from the
// gender pool, optionally restricted to usage.
func (g *Generator) pickStructure(gender, usage string, structure []catalog.Part) (recommend.Outfit, bool) {
	var o recommend.Outfit
	for _, part := range structure {
		id, ok := g.sampler.Pick(g.pools.get(gender, usage, part))
		if !ok {
			return recommend.Outfit{}, false
		}
		slot, _ := recommend.SlotFor(part)
		o = o.With(slot, id)
	}
	return o, true
}
