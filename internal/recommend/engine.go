// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/metrics"
)

// Engine picks the best outfit from a closet. It is safe for concurrent use.
type Engine struct {
	config    *Config
	logger    zerolog.Logger
	index     *catalog.Index
	scorer    *Scorer
	generator *Generator
	reranker  Reranker
	sink      ResultSink

	requestCount atomic.Int64
	servedCount  atomic.Int64
	emptyCount   atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine over a loaded catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, index *catalog.Index, reranker Reranker, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if index == nil {
		return nil, fmt.Errorf("catalog index is required")
	}
	if reranker == nil {
		return nil, fmt.Errorf("reranker is required")
	}

	return &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		index:     index,
		scorer:    NewScorer(index, index.Taxonomy()),
		generator: NewGenerator(NewClosetClassifier(index), cfg.Limits.MaxCandidates),
		reranker:  reranker,
	}, nil
}

// SetResultSink registers the receiver of served recommendations.
func (e *Engine) SetResultSink(sink ResultSink) {
	e.sink = sink
}

// Scorer returns the engine's heuristic scorer.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Index returns the catalog the engine serves from.
func (e *Engine) Index() *catalog.Index {
	return e.index
}

// Recommend enumerates every candidate, asks the reranker once for the whole
// batch and returns the most probable outfit. ErrEmptyCandidateSet is
// returned when the closet allows no skeleton; a timeout aborts the whole
// request without a partial result.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	logger := e.createRequestLogger(req)

	if len(req.Closet) > e.config.Limits.MaxClosetItems {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: %d items, limit %d", ErrTooManyCandidates, len(req.Closet), e.config.Limits.MaxClosetItems)
	}

	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	outfits, closet, err := e.generator.Generate(req.Closet)
	if err != nil {
		if errors.Is(err, ErrEmptyCandidateSet) {
			e.emptyCount.Add(1)
			metrics.RecordRecommendation(0, time.Since(start))
			logger.Debug().
				Int("tops", len(closet.Tops)).
				Int("bottoms", len(closet.Bottoms)).
				Int("shoes", len(closet.Shoes)).
				Msg("no valid combination")
			return nil, err
		}
		e.errorCount.Add(1)
		return nil, fmt.Errorf("generate candidates: %w", err)
	}

	candidates := e.buildCandidates(req.Context, outfits)

	probs, err := e.rerank(ctx, req.Context, candidates)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("rerank candidates: %w: %w", ErrReranker, err)
	}

	best := SelectBest(probs)
	winner := candidates[best]
	_, explanation := e.scorer.Explain(req.Context, winner.Outfit)

	resp := &Response{
		RequestID: req.RequestID,
		Context:   req.Context,
		Best: BestCombination{
			Description: winner.Description,
			IDs:         winner.Outfit.IDs(),
		},
		Outfit:          winner.Outfit,
		BestScore:       probs[best],
		HeuristicScore:  winner.Score,
		Explanation:     explanation,
		TotalEvaluated:  len(candidates),
		ProcessingTime:  time.Since(start).Seconds(),
		Reranker:        e.reranker.Name(),
		CreatedAt:       time.Now().UTC(),
		UnplacedClosetN: len(closet.Unplaced),
	}

	e.servedCount.Add(1)
	metrics.RecordRecommendation(len(candidates), time.Since(start))
	e.recordServed(ctx, resp, logger)

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("best_index", best).
		Float64("best_score", resp.BestScore).
		Float64("processing_time", resp.ProcessingTime).
		Msg("recommendation complete")

	return resp, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("event", req.Context.Event).
		Int("closet", len(req.Closet)).
		Logger()
}

// buildCandidates renders and scores each outfit in enumeration order.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (e *Engine) buildCandidates(c Context, outfits []Outfit) []Candidate {
	candidates := make([]Candidate, len(outfits))
	for i, o := range outfits {
		desc := Describe(e.index, o)
		candidates[i] = Candidate{
			Outfit:      o,
			Description: desc,
			Prompt:      Prompt(c, desc),
			Score:       e.scorer.Score(c, o),
		}
	}
	return candidates
}

// rerank issues the single batched reranker call.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (e *Engine) rerank(ctx context.Context, c Context, candidates []Candidate) ([]float64, error) {
	start := time.Now()
	probs, err := e.reranker.Probabilities(ctx, c, candidates)
	metrics.RecordReranker(e.reranker.Name(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if err := CheckProbabilities(probs, len(candidates)); err != nil {
		return nil, err
	}
	return probs, nil
}

// recordServed forwards the response to the sink without failing the request.
func (e *Engine) recordServed(ctx context.Context, resp *Response, logger zerolog.Logger) { //nolint:gocritic // zerolog by value
	if e.sink == nil {
		return
	}
	if err := e.sink.RecordServed(context.WithoutCancel(ctx), resp); err != nil {
		logger.Warn().Err(err).Msg("failed to record served recommendation")
	}
}

// RerankerName returns the name of the configured reranker.
func (e *Engine) RerankerName() string {
	return e.reranker.Name()
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		Served:   e.servedCount.Load(),
		Empty:    e.emptyCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}
