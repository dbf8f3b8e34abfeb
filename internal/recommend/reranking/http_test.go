// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package reranking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wardrobe/internal/recommend"
)

func testHTTPConfig(url string) HTTPConfig {
	cfg := DefaultHTTPConfig(url)
	cfg.Timeout = 5 * time.Second
	cfg.RateLimit = 0
	return cfg
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewHTTPClient(testHTTPConfig(server.URL), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return client, server
}

func TestHTTPClientSendsOneBatch(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		probs := make([]float64, len(req.Prompts))
		for i, p := range req.Prompts {
			if !strings.HasPrefix(p, "Context: Men, 20°C, Cloudy, Office Meeting") {
				t.Errorf("prompt %d = %q", i, p)
			}
			probs[i] = 0.25
		}
		probs[len(probs)-1] = 0.9
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(predictResponse{Probabilities: probs})
	})

	probs, err := client.Probabilities(context.Background(), testContext, candidates(4))
	if err != nil {
		t.Fatalf("Probabilities: %v", err)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("requests = %d, want 1", got)
	}
	if len(probs) != 4 || probs[3] != 0.9 || probs[0] != 0.25 {
		t.Errorf("probs = %v", probs)
	}
	if client.Name() != "http" {
		t.Errorf("Name = %q", client.Name())
	}
}

func TestHTTPClientEmptyBatchSkipsServer(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
	})
	probs, err := client.Probabilities(context.Background(), testContext, nil)
	if err != nil || len(probs) != 0 {
		t.Fatalf("Probabilities = %v, %v", probs, err)
	}
	if requests.Load() != 0 {
		t.Error("server should not be called for an empty batch")
	}
}

func TestHTTPClientErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
		wantMsg string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantMsg: "unexpected status: 500",
		},
		{
			name: "wrong count",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"probabilities":[0.5]}`))
			},
			wantErr: recommend.ErrProbabilityCount,
		},
		{
			name: "out of range",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"probabilities":[0.5,1.5]}`))
			},
			wantErr: recommend.ErrInvalidProbability,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"probabilities":`))
			},
			wantMsg: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, _ := newTestClient(t, tt.handler)
			_, err := client.Probabilities(context.Background(), testContext, candidates(2))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestHTTPClientBreakerOpens(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 10; i++ {
		if _, err := client.Probabilities(context.Background(), testContext, candidates(1)); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}
	if client.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", client.State())
	}
	if client.Ready() {
		t.Error("Ready should be false with an open breaker")
	}

	_, err := client.Probabilities(context.Background(), testContext, candidates(1))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if got := requests.Load(); got != 10 {
		t.Errorf("requests = %d, want 10", got)
	}
}

func TestHTTPClientHonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.Probabilities(ctx, testContext, candidates(1))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestHTTPClientRateLimitWait(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"probabilities":[0.5]}`))
	}))
	defer server.Close()

	cfg := testHTTPConfig(server.URL)
	cfg.RateLimit = 0.001
	cfg.Burst = 1
	client, err := NewHTTPClient(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}

	if _, err := client.Probabilities(context.Background(), testContext, candidates(1)); err != nil {
		t.Fatalf("first call: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Probabilities(ctx, testContext, candidates(1))
	if err == nil || !strings.Contains(err.Error(), "rate limit wait") {
		t.Errorf("err = %v, want rate limit wait error", err)
	}
}

func TestNewHTTPClientRequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPClient(DefaultHTTPConfig(""), zerolog.Nop()); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestStateToFloat(t *testing.T) {
	t.Parallel()

	tests := map[gobreaker.State]float64{
		gobreaker.StateClosed:   0,
		gobreaker.StateHalfOpen: 1,
		gobreaker.StateOpen:     2,
	}
	for state, want := range tests {
		if got := stateToFloat(state); got != want {
			t.Errorf("stateToFloat(%v) = %v, want %v", state, got, want)
		}
	}
}
