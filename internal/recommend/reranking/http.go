// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package reranking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// ErrUnavailable means the circuit breaker is rejecting calls.
var ErrUnavailable = errors.New("reranker unavailable")

// maxResponseBytes bounds the decoded response body.
const maxResponseBytes = 8 << 20

// HTTPConfig configures the HTTP reranker client.
type HTTPConfig struct {
	// URL receives POST {"prompts": [...]}.
	URL string

	// Timeout bounds one HTTP exchange. The request context may end it sooner.
	Timeout time.Duration

	// RateLimit is the sustained requests per second. Zero disables limiting.
	RateLimit float64
	Burst     int

	// Breaker trips when at least BreakerMinRequests calls in BreakerInterval
	// failed at BreakerFailureRatio or more, and probes again after BreakerTimeout.
	BreakerMinRequests  uint32
	BreakerFailureRatio float64
	BreakerInterval     time.Duration
	BreakerTimeout      time.Duration
}

// DefaultHTTPConfig returns production defaults for url.
func DefaultHTTPConfig(url string) HTTPConfig {
	return HTTPConfig{
		URL:                 url,
		Timeout:             30 * time.Second,
		RateLimit:           20,
		Burst:               5,
		BreakerMinRequests:  10,
		BreakerFailureRatio: 0.6,
		BreakerInterval:     time.Minute,
		BreakerTimeout:      30 * time.Second,
	}
}

type predictRequest struct {
	Prompts []string `json:"prompts"`
}

type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// HTTPClient calls an external model server.
type HTTPClient struct {
	cfg     HTTPConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]float64]
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string
}

// NewHTTPClient creates a client with its own breaker and limiter.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPClient(cfg HTTPConfig, logger zerolog.Logger) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("reranker url is required")
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	h := &HTTPClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger.With().Str("component", "reranker").Str("reranker", "http").Logger(),
		name:    "reranker-http",
	}

	metrics.RerankerBreakerState.WithLabelValues(h.name).Set(0)
	h.breaker = gobreaker.NewCircuitBreaker[[]float64](gobreaker.Settings{
		Name:        h.name,
		MaxRequests: 1,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.BreakerFailureRatio {
				h.logger.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_ratio", ratio).Msg("opening reranker circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			h.logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("reranker circuit state change")
			metrics.RerankerBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.RerankerBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
	return h, nil
}

// Name implements recommend.Reranker.
func (h *HTTPClient) Name() string {
	return "http"
}

// Ready reports whether the breaker admits calls.
func (h *HTTPClient) Ready() bool {
	return h.breaker.State() != gobreaker.StateOpen
}

// State returns the breaker state.
func (h *HTTPClient) State() gobreaker.State {
	return h.breaker.State()
}

// Probabilities sends every candidate prompt in one request.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (h *HTTPClient) Probabilities(ctx context.Context, _ recommend.Context, candidates []recommend.Candidate) ([]float64, error) {
	if len(candidates) == 0 {
		return []float64{}, nil
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	prompts := make([]string, len(candidates))
	for i := range candidates {
		prompts[i] = candidates[i].Prompt
	}

	probs, err := h.breaker.Execute(func() ([]float64, error) {
		return h.predict(ctx, prompts)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}
	return probs, nil
}

func (h *HTTPClient) predict(ctx context.Context, prompts []string) ([]float64, error) {
	body, err := json.Marshal(predictRequest{Prompts: prompts})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call reranker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var out predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := recommend.CheckProbabilities(out.Probabilities, len(prompts)); err != nil {
		return nil, err
	}
	return out.Probabilities, nil
}

// stateToFloat maps breaker states to the gauge encoding.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
