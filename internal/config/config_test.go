// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Reranker.Mode != "heuristic" {
		t.Errorf("Reranker.Mode = %q, want heuristic", cfg.Reranker.Mode)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
	if cfg.Dataset.TargetRatio != 0.5 || cfg.Dataset.Samples != 20000 {
		t.Errorf("dataset defaults = %+v", cfg.Dataset)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	path := writeConfigFile(t, `
catalog:
  path: /srv/styles.csv
  source: duckdb
server:
  port: 9090
  request_timeout: 5s
  cors_origins: ["https://a.example", "https://b.example"]
reranker:
  mode: http
  url: http://model:8000/predict
  cache_ttl: 1m
history:
  in_memory: true
dataset:
  seed: 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != "/srv/styles.csv" || cfg.Catalog.Source != "duckdb" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Server.Port != 9090 || cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if diff := cmp.Diff([]string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins); diff != "" {
		t.Errorf("cors origins (-want +got):\n%s", diff)
	}
	if cfg.Reranker.Mode != "http" || cfg.Reranker.CacheTTL != time.Minute {
		t.Errorf("reranker = %+v", cfg.Reranker)
	}
	if !cfg.History.InMemory || cfg.Dataset.Seed != 7 {
		t.Errorf("history = %+v dataset = %+v", cfg.History, cfg.Dataset)
	}
	// Unset keys keep their defaults.
	if cfg.Recommend.MaxClosetItems != 200 {
		t.Errorf("MaxClosetItems = %d, want default 200", cfg.Recommend.MaxClosetItems)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9090\nlogging:\n  level: debug\n")
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("CORS_ORIGINS", "https://x.example, https://y.example")
	t.Setenv("RERANKER_FALLBACK", "false")
	t.Setenv("DATASET_TARGET_RATIO", "0.3")
	t.Setenv("HISTORY_RETENTION", "48h")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070 from env", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug from file", cfg.Logging.Level)
	}
	if diff := cmp.Diff([]string{"https://x.example", "https://y.example"}, cfg.Server.CORSOrigins); diff != "" {
		t.Errorf("cors origins (-want +got):\n%s", diff)
	}
	if cfg.Reranker.Fallback {
		t.Error("Fallback should be false from env")
	}
	if cfg.Dataset.TargetRatio != 0.3 {
		t.Errorf("TargetRatio = %v", cfg.Dataset.TargetRatio)
	}
	if cfg.History.Retention != 48*time.Hour {
		t.Errorf("Retention = %v", cfg.History.Retention)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	path := writeConfigFile(t, "reranker:\n  mode: http\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "reranker.url is required") {
		t.Errorf("err = %v, want missing url error", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"bad source", func(c *Config) { c.Catalog.Source = "parquet" }, "catalog.source"},
		{"images required", func(c *Config) { c.Catalog.RequireImages = true }, "catalog.images_dir"},
		{"port range", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"rate limit", func(c *Config) { c.Server.RateLimitRequests = 0 }, "rate_limit_requests"},
		{"rate limit disabled", func(c *Config) { c.Server.RateLimitRequests = 0; c.Server.RateLimitDisabled = true }, ""},
		{"closet limit", func(c *Config) { c.Recommend.MaxClosetItems = 0 }, "max_closet_items"},
		{"mode", func(c *Config) { c.Reranker.Mode = "gpu" }, "reranker.mode"},
		{"url scheme", func(c *Config) { c.Reranker.Mode = "http"; c.Reranker.URL = "ftp://model" }, "scheme"},
		{"history path", func(c *Config) { c.History.Path = "" }, "history.path"},
		{"history disabled", func(c *Config) { c.History.Path = ""; c.History.Enabled = false }, ""},
		{"ratio", func(c *Config) { c.Dataset.TargetRatio = 1.5 }, "target_ratio"},
		{"full body prob", func(c *Config) { c.Dataset.FullBodyProb = -0.1 }, "full_body_prob"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Server.Port = -1
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"server.port", "logging.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":     "server.port",
		"RERANKER_URL":  "reranker.url",
		"log_level":     "logging.level",
		"TAXONOMY_PATH": "catalog.taxonomy_path",
		"HOME":          "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
