// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/recommend/sampling"
)

// Probability of adding an outer in mild weather, by forced label.
const (
	mildOuterPositive = 0.5
	mildOuterNegative = 0.7
)

// Report summarizes a run.
type Report struct {
	Requested int                   `json:"requested"`
	Generated int                   `json:"generated"`
	Positive  int                   `json:"positive"`
	Negative  int                   `json:"negative"`
	Skipped   int                   `json:"skipped"`
	Attempts  int                   `json:"attempts"`
	Tiers     map[sampling.Tier]int `json:"tiers,omitempty"`
	Duration  time.Duration         `json:"duration"`
}

// Generator produces datasets from a catalog. A Generator holds the run's
// random stream and must not be shared between goroutines.
type Generator struct {
	cfg      *Config
	logger   zerolog.Logger
	index    *catalog.Index
	taxonomy *catalog.Taxonomy
	scorer   *recommend.Scorer
	sampler  *sampling.Sampler
	rng      *rand.Rand
	pools    *pools
	contexts *contextDrawer
	miner    *Miner
	tiers    map[sampling.Tier]int
}

// NewGenerator creates a generator seeded from cfg.Seed.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenerator(cfg *Config, index *catalog.Index, logger zerolog.Logger) (*Generator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset config: %w", err)
	}
	if index == nil || index.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	taxonomy := index.Taxonomy()
	events := eventsFor(taxonomy, cfg.AllowedUsages)
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	p := newPools(index, cfg.AllowedUsages)
	return &Generator{
		cfg:      cfg,
		logger:   logger.With().Str("component", "dataset").Logger(),
		index:    index,
		taxonomy: taxonomy,
		scorer:   recommend.NewScorer(index, taxonomy),
		sampler:  sampling.New(rng),
		rng:      rng,
		pools:    p,
		contexts: &contextDrawer{rng: rng, events: events, tempMin: cfg.TempMin, tempMax: cfg.TempMax},
		miner:    newMiner(index, p, rng),
		tiers:    make(map[sampling.Tier]int),
	}, nil
}

// Run generates a label-balanced dataset into sink.
func (g *Generator) Run(ctx context.Context, sink Sink[Sample]) (Report, error) {
	start := time.Now()
	report := Report{Requested: g.cfg.Samples}
	ratio := NewRatioController(g.cfg.TargetRatio)

	g.logger.Info().
		Int("samples", g.cfg.Samples).
		Float64("target_ratio", g.cfg.TargetRatio).
		Int("max_attempts", g.cfg.MaxAttempts).
		Int64("seed", g.cfg.Seed).
		Msg("starting balanced generation")

	for i := 0; i < g.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return g.finish(report, start), err
		}

		sample, attempts, err := g.generateOne(ratio.Force())
		report.Attempts += attempts
		if errors.Is(err, ErrRatioAttemptsExhausted) {
			report.Skipped++
			metrics.DatasetSkipped.WithLabelValues("attempts_exhausted").Inc()
			g.logger.Warn().Err(err).Int("sample", i+1).Msg("skipping sample")
			continue
		}

		if err := sink.Write(sample); err != nil {
			return g.finish(report, start), fmt.Errorf("write sample: %w", err)
		}
		label := Label(sample.Label)
		ratio.Record(label)
		g.count(&report, label)

		if g.cfg.ReportEvery > 0 && (i+1)%g.cfg.ReportEvery == 0 {
			pos, neg := ratio.Counts()
			g.logger.Info().
				Int("generated", report.Generated).
				Int("requested", report.Requested).
				Int("positive", pos).
				Int("negative", neg).
				Float64("positive_ratio", ratio.Fraction()).
				Msg("generation progress")
		}
	}

	report = g.finish(report, start)
	g.logger.Info().
		Int("generated", report.Generated).
		Int("positive", report.Positive).
		Int("negative", report.Negative).
		Int("skipped", report.Skipped).
		Dur("duration", report.Duration).
		Msg("balanced generation complete")
	return report, nil
}

func (g *Generator) count(report *Report, label Label) {
	report.Generated++
	if label == LabelPositive {
		report.Positive++
	} else {
		report.Negative++
	}
	metrics.DatasetSamples.WithLabelValues(string(label)).Inc()
}

func (g *Generator) finish(report Report, start time.Time) Report { //nolint:gocritic // hugeParam: small summary struct
	report.Duration = time.Since(start)
	report.Tiers = make(map[sampling.Tier]int, len(g.tiers))
	for k, v := range g.tiers {
		report.Tiers[k] = v
	}
	return report
}

// generateOne retries attempts until one yields the forced label.
func (g *Generator) generateOne(forced Label) (Sample, int, error) {
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		if s, ok := g.attempt(forced); ok {
			return s, attempt, nil
		}
	}
	return Sample{}, g.cfg.MaxAttempts, fmt.Errorf("%w: no %s sample after %d attempts",
		ErrRatioAttemptsExhausted, forced, g.cfg.MaxAttempts)
}

// attempt draws one context and outfit and reports whether it carries forced.
func (g *Generator) attempt(forced Label) (Sample, bool) {
	c := g.contexts.draw()
	expected := g.taxonomy.ExpectedUsage(c.Event)

	pool := g.pools.sampling(c.Gender, "")
	if pool.Len() == 0 {
		return Sample{}, false
	}
	if forced == LabelPositive {
		if usagePool := g.pools.sampling(c.Gender, expected); usagePool.Len() > 0 {
			pool = usagePool
		}
	}

	o, ok := g.drawSkeleton(pool)
	if !ok {
		return Sample{}, false
	}

	needs := recommend.NeedsOuter(c.Temperature, c.Condition)
	forbids := recommend.ForbidsOuter(c.Temperature, c.Condition)
	if g.wantOuter(forced, needs, forbids) {
		if id, ok := g.drawPart(pool, catalog.PartOuter); ok {
			o = o.With(recommend.SlotOuter, id)
		}
	}

	label := g.label(o, expected, needs, forbids)
	if label != forced {
		return Sample{}, false
	}
	return Sample{Context: c, Outfit: o, Label: string(label)}, true
}

// drawSkeleton draws full body and shoes with FullBodyProb, otherwise (or when
// no full-body item is drawn) top, bottom and shoes.
func (g *Generator) drawSkeleton(pool *sampling.Pool) (recommend.Outfit, bool) {
	var o recommend.Outfit
	if g.rng.Float64() < g.cfg.FullBodyProb {
		if id, ok := g.drawPart(pool, catalog.PartFullBody); ok {
			o = o.With(recommend.SlotFullBody, id)
		}
	}
	parts := []catalog.Part{catalog.PartTop, catalog.PartBottom, catalog.PartShoes}
	if o.IsFullBody() {
		parts = []catalog.Part{catalog.PartShoes}
	}
	for _, part := range parts {
		id, ok := g.drawPart(pool, part)
		if !ok {
			return recommend.Outfit{}, false
		}
		slot, _ := recommend.SlotFor(part)
		o = o.With(slot, id)
	}
	return o, o.Valid()
}

// drawPart samples an item for part and rejects draws whose articleType maps elsewhere.
func (g *Generator) drawPart(pool *sampling.Pool, part catalog.Part) (int, bool) {
	res, err := g.sampler.Draw(pool, sampling.NewConstraint(masterCategoryFor(part), g.taxonomy.ArticleTypes(part)...))
	if err != nil {
		return 0, false
	}
	g.tiers[res.Tier]++
	item, ok := g.index.ByID(res.ID)
	if !ok || item.Part != part {
		return 0, false
	}
	return res.ID, true
}

// wantOuter decides whether to add an outer. Positive attempts follow the
// weather; negative attempts contradict it.
func (g *Generator) wantOuter(forced Label, needs, forbids bool) bool {
	positive := forced == LabelPositive
	switch {
	case needs:
		return positive
	case forbids:
		return !positive
	case positive:
		return g.rng.Float64() < mildOuterPositive
	default:
		return g.rng.Float64() < mildOuterNegative
	}
}

// label is Positive iff every item has the expected usage and the outer
// slot agrees with the weather.
func (g *Generator) label(o recommend.Outfit, expected string, needs, forbids bool) Label {
	hasOuter := o.Has(recommend.SlotOuter)
	if (hasOuter && forbids) || (!hasOuter && needs) {
		return LabelNegative
	}
	for _, id := range o.IDs() {
		item, ok := g.index.ByID(id)
		if !ok || item.Usage != expected {
			return LabelNegative
		}
	}
	return LabelPositive
}

// masterCategoryFor is the catalog masterCategory holding part.
func masterCategoryFor(part catalog.Part) string {
	if part == catalog.PartShoes {
		return "Footwear"
	}
	return "Apparel"
}
