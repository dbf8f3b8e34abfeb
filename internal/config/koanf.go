// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wardrobe/config.yaml",
	"/etc/wardrobe/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:   "./data/styles.csv",
			Source: "csv",
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Recommend: RecommendConfig{
			MaxClosetItems: 200,
			MaxCandidates:  50000,
			Timeout:        10 * time.Second,
		},
		Reranker: RerankerConfig{
			Mode:      "heuristic",
			Timeout:   5 * time.Second,
			RateLimit: 20,
			Burst:     5,
			Fallback:  true,
			CacheSize: 10000,
			CacheTTL:  10 * time.Minute,
		},
		History: HistoryConfig{
			Enabled:   true,
			Path:      "./data/history",
			Retention: 30 * 24 * time.Hour,
		},
		Dataset: DatasetConfig{
			Samples:      20000,
			TargetRatio:  0.5,
			MaxAttempts:  500,
			Seed:         1,
			ReportEvery:  1000,
			FullBodyProb: 0.10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Default returns the built-in defaults.
func Default() *Config {
	return defaultConfig()
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, then validates it. A non-empty path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variables (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"catalog_path":           "catalog.path",
	"catalog_source":         "catalog.source",
	"catalog_images_dir":     "catalog.images_dir",
	"catalog_require_images": "catalog.require_images",
	"taxonomy_path":          "catalog.taxonomy_path",

	"http_host":           "server.host",
	"http_port":           "server.port",
	"request_timeout":     "server.request_timeout",
	"shutdown_timeout":    "server.shutdown_timeout",
	"cors_origins":        "server.cors_origins",
	"rate_limit_requests": "server.rate_limit_requests",
	"rate_limit_window":   "server.rate_limit_window",
	"disable_rate_limit":  "server.rate_limit_disabled",

	"max_closet_items":  "recommend.max_closet_items",
	"max_candidates":    "recommend.max_candidates",
	"recommend_timeout": "recommend.timeout",

	"reranker_mode":       "reranker.mode",
	"reranker_url":        "reranker.url",
	"reranker_timeout":    "reranker.timeout",
	"reranker_rate_limit": "reranker.rate_limit",
	"reranker_burst":      "reranker.burst",
	"reranker_fallback":   "reranker.fallback",
	"reranker_cache_size": "reranker.cache_size",
	"reranker_cache_ttl":  "reranker.cache_ttl",

	"history_enabled":   "history.enabled",
	"history_path":      "history.path",
	"history_in_memory": "history.in_memory",
	"history_retention": "history.retention",

	"dataset_samples":        "dataset.samples",
	"dataset_target_ratio":   "dataset.target_ratio",
	"dataset_max_attempts":   "dataset.max_attempts",
	"dataset_seed":           "dataset.seed",
	"dataset_report_every":   "dataset.report_every",
	"dataset_full_body_prob": "dataset.full_body_prob",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable to a koanf path. Unmapped
// variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
