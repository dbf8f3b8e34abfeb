// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Server    ServerConfig    `koanf:"server"`
	Recommend RecommendConfig `koanf:"recommend"`
	Reranker  RerankerConfig  `koanf:"reranker"`
	History   HistoryConfig   `koanf:"history"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the product catalog.
type CatalogConfig struct {
	Path string `koanf:"path"`

	// Source is csv (encoding/csv) or duckdb (read_csv_auto).
	Source string `koanf:"source"`

	ImagesDir     string `koanf:"images_dir"`
	RequireImages bool   `koanf:"require_images"`

	// TaxonomyPath overrides the built-in articleType and event tables.
	TaxonomyPath string `koanf:"taxonomy_path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`

	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig bounds the work of one recommendation.
type RecommendConfig struct {
	MaxClosetItems int           `koanf:"max_closet_items"`
	MaxCandidates  int           `koanf:"max_candidates"`
	Timeout        time.Duration `koanf:"timeout"`
}

// RerankerConfig selects and tunes the reranker.
type RerankerConfig struct {
	// Mode is http (external model server) or heuristic (score logistic).
	Mode string `koanf:"mode"`

	URL       string        `koanf:"url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
	Burst     int           `koanf:"burst"`

	// Fallback answers from the heuristic when the http reranker fails.
	Fallback bool `koanf:"fallback"`

	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// HistoryConfig configures the recommendation history store.
type HistoryConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Path      string        `koanf:"path"`
	InMemory  bool          `koanf:"in_memory"`
	Retention time.Duration `koanf:"retention"`
}

// DatasetConfig holds dataset generation defaults. CLI flags override them.
type DatasetConfig struct {
	Samples      int     `koanf:"samples"`
	TargetRatio  float64 `koanf:"target_ratio"`
	MaxAttempts  int     `koanf:"max_attempts"`
	Seed         int64   `koanf:"seed"`
	ReportEvery  int     `koanf:"report_every"`
	FullBodyProb float64 `koanf:"full_body_prob"`
}

// LoggingConfig holds logging settings for zerolog.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// Addr returns host:port for the HTTP listener.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
