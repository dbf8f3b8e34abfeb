// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/catalog/catalogtest"
	"github.com/tomtom215/wardrobe/internal/history"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/recommend/reranking"
)

// Fixture ids.
const (
	tee      = 1
	jeans    = 2
	sneakers = 3
	jacket   = 4
	shirt    = 5
)

func testIndex(t testing.TB) *catalog.Index {
	t.Helper()
	return catalogtest.Index(t,
		catalogtest.Spec{ID: tee, ArticleType: "Tshirts", Colour: "Black"},
		catalogtest.Spec{ID: jeans, ArticleType: "Jeans", Colour: "Blue"},
		catalogtest.Spec{ID: sneakers, ArticleType: "Sneakers", Colour: "White"},
		catalogtest.Spec{ID: jacket, ArticleType: "Jackets", Colour: "Black", Season: catalog.SeasonWinter},
		catalogtest.Spec{ID: shirt, ArticleType: "Shirts", Colour: "White", Usage: catalog.UsageFormal, Season: catalog.SeasonFall},
	)
}

// stubReranker answers every batch with fn.
type stubReranker struct {
	fn func(ctx context.Context, candidates []recommend.Candidate) ([]float64, error)
}

func (s *stubReranker) Name() string { return "stub" }

//nolint:gocritic // hugeParam: matches Reranker interface
func (s *stubReranker) Probabilities(ctx context.Context, _ recommend.Context, candidates []recommend.Candidate) ([]float64, error) {
	return s.fn(ctx, candidates)
}

type staticReadiness bool

func (s staticReadiness) Ready() bool { return bool(s) }

type testServer struct {
	engine  *recommend.Engine
	handler http.Handler
}

type serverOptions struct {
	reranker   recommend.Reranker
	engineCfg  *recommend.Config
	middleware *ChiMiddlewareConfig
	handler    []HandlerOption
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	if opts.reranker == nil {
		opts.reranker = reranking.NewHeuristic()
	}
	if opts.middleware == nil {
		opts.middleware = DefaultChiMiddlewareConfig()
		opts.middleware.RateLimitDisabled = true
	}
	engine, err := recommend.NewEngine(opts.engineCfg, testIndex(t), opts.reranker, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	router := NewRouter(NewHandler(engine, opts.handler...), opts.middleware, zerolog.Nop())
	return &testServer{engine: engine, handler: router.SetupChi()}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("encode body: %v", err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

// envelope decodes the APIResponse with a typed payload.
type envelope[T any] struct {
	Status   string           `json:"status"`
	Data     T                `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func officeRequest(closet ...int) map[string]interface{} {
	return map[string]interface{}{
		"closet":      closet,
		"event":       "Office Meeting",
		"temperature": 12,
		"condition":   "Cloudy",
		"gender":      "Men",
	}
}

func intPtr(v int) *int { return &v }

func memoryHistory(t *testing.T) *history.Store {
	t.Helper()
	cfg := history.DefaultConfig()
	cfg.InMemory = true
	store, err := history.Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newPreflight(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	return req
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}
