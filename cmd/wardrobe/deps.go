// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/api"
	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/recommend/reranking"
)

// loadCatalog loads the configured catalog. Every command treats failure as fatal.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func loadCatalog(ctx context.Context, cfg *config.CatalogConfig, logger zerolog.Logger) (*catalog.Index, error) {
	taxonomy := catalog.DefaultTaxonomy()
	if cfg.TaxonomyPath != "" {
		t, err := catalog.LoadTaxonomy(cfg.TaxonomyPath)
		if err != nil {
			return nil, err
		}
		taxonomy = t
	}

	source, err := catalog.SourceFor(cfg.Source, cfg.Path)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, catalog.LoadOptions{
		Source:        source,
		Taxonomy:      taxonomy,
		ImagesDir:     cfg.ImagesDir,
		RequireImages: cfg.RequireImages,
	}, logger.With().Str("component", "catalog").Logger())
}

// buildReranker assembles the configured reranker stack:
//
//	heuristic:  Heuristic
//	http:       Fallback(Cached(HTTPClient), Heuristic), or Cached(HTTPClient)
//	            without fallback
//
// Only model answers are cached. The readiness checker is non-nil only for
// http mode.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func buildReranker(cfg *config.RerankerConfig, logger zerolog.Logger) (recommend.Reranker, api.ReadinessChecker, error) {
	if cfg.Mode != "http" {
		return reranking.NewHeuristic(), nil, nil
	}

	httpCfg := reranking.DefaultHTTPConfig(cfg.URL)
	httpCfg.Timeout = cfg.Timeout
	httpCfg.RateLimit = cfg.RateLimit
	httpCfg.Burst = cfg.Burst
	client, err := reranking.NewHTTPClient(httpCfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create http reranker: %w", err)
	}

	var r recommend.Reranker = client
	if cfg.CacheSize > 0 {
		r = reranking.NewCached(r, cfg.CacheSize, cfg.CacheTTL)
	}
	if cfg.Fallback {
		r = reranking.NewFallback(r, reranking.NewHeuristic(), logger)
	}
	return r, client, nil
}

// engineConfig maps the recommend section onto the engine config.
func engineConfig(cfg *config.RecommendConfig) *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.Limits.MaxClosetItems = cfg.MaxClosetItems
	ec.Limits.MaxCandidates = cfg.MaxCandidates
	ec.Timeout = cfg.Timeout
	return ec
}
