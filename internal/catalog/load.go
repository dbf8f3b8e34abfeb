// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/wardrobe/internal/metrics"
)

// LoadOptions configures Load.
type LoadOptions struct {
	Source        Source
	Taxonomy      *Taxonomy
	ImagesDir     string
	RequireImages bool
}

// Load reads rows and scans the image directory concurrently, then builds the Index.
// Any error is fatal to the caller: there is no catalog to operate on.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, opts LoadOptions, logger zerolog.Logger) (*Index, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("load catalog: no source configured")
	}
	start := time.Now()

	var (
		rows   []Row
		assets AssetSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := opts.Source.Rows(gctx)
		if err != nil {
			return fmt.Errorf("read rows: %w", err)
		}
		rows = r
		return nil
	})
	if opts.RequireImages && opts.ImagesDir != "" {
		g.Go(func() error {
			a, err := ScanImageDir(gctx, opts.ImagesDir)
			if err != nil {
				return err
			}
			assets = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	idxOpts := Options{Taxonomy: opts.Taxonomy}
	if assets != nil {
		idxOpts.Assets = assets
	}

	idx, err := NewIndex(rows, idxOpts)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	stats := idx.Stats()
	metrics.CatalogItems.Set(float64(stats.Indexed))
	for reason, n := range stats.Dropped {
		metrics.CatalogDropped.WithLabelValues(string(reason)).Add(float64(n))
	}

	logger.Info().
		Int("rows", stats.Rows).
		Int("indexed", stats.Indexed).
		Int("dropped", stats.TotalDropped()).
		Int("assets", len(assets)).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")

	return idx, nil
}
