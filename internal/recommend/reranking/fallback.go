// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package reranking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// Fallback answers from secondary when primary fails.
// Context cancellation and deadline errors are returned as is.
type Fallback struct {
	primary   recommend.Reranker
	secondary recommend.Reranker
	logger    zerolog.Logger
}

// NewFallback wraps primary with secondary.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFallback(primary, secondary recommend.Reranker, logger zerolog.Logger) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "reranker").Str("reranker", "fallback").Logger(),
	}
}

// Name reports the primary name, which is what answers in steady state.
func (f *Fallback) Name() string {
	return f.primary.Name()
}

// Probabilities implements recommend.Reranker.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (f *Fallback) Probabilities(ctx context.Context, c recommend.Context, candidates []recommend.Candidate) ([]float64, error) {
	probs, err := f.primary.Probabilities(ctx, c, candidates)
	if err == nil {
		return probs, nil
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	metrics.RerankerFallbacks.Inc()
	f.logger.Warn().Err(err).
		Str("secondary", f.secondary.Name()).
		Int("candidates", len(candidates)).
		Msg("primary reranker failed, using fallback")
	return f.secondary.Probabilities(ctx, c, candidates)
}
