// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package config

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	validCatalogSources = map[string]bool{"csv": true, "duckdb": true}
	validRerankerModes  = map[string]bool{"http": true, "heuristic": true}
	validLogLevels      = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validLogFormats     = map[string]bool{"json": true, "console": true}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateCatalog(),
		c.validateServer(),
		c.validateRecommend(),
		c.validateReranker(),
		c.validateHistory(),
		c.validateDataset(),
		c.validateLogging(),
	)
}

func (c *Config) validateCatalog() error {
	var errs []error
	if c.Catalog.Path == "" {
		errs = append(errs, errors.New("catalog.path is required"))
	}
	if !validCatalogSources[c.Catalog.Source] {
		errs = append(errs, fmt.Errorf("catalog.source must be csv or duckdb, got %q", c.Catalog.Source))
	}
	if c.Catalog.RequireImages && c.Catalog.ImagesDir == "" {
		errs = append(errs, errors.New("catalog.images_dir is required when catalog.require_images is set"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateServer() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitRequests <= 0 {
			errs = append(errs, errors.New("server.rate_limit_requests must be positive"))
		}
		if c.Server.RateLimitWindow <= 0 {
			errs = append(errs, errors.New("server.rate_limit_window must be positive"))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) validateRecommend() error {
	var errs []error
	if c.Recommend.MaxClosetItems <= 0 {
		errs = append(errs, errors.New("recommend.max_closet_items must be positive"))
	}
	if c.Recommend.MaxCandidates <= 0 {
		errs = append(errs, errors.New("recommend.max_candidates must be positive"))
	}
	if c.Recommend.Timeout < 0 {
		errs = append(errs, errors.New("recommend.timeout must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateReranker() error {
	var errs []error
	if !validRerankerModes[c.Reranker.Mode] {
		errs = append(errs, fmt.Errorf("reranker.mode must be http or heuristic, got %q", c.Reranker.Mode))
	}
	if c.Reranker.Mode == "http" {
		if c.Reranker.URL == "" {
			errs = append(errs, errors.New("reranker.url is required in http mode"))
		} else if err := validateHTTPURL(c.Reranker.URL); err != nil {
			errs = append(errs, fmt.Errorf("reranker.url is invalid: %w", err))
		}
	}
	if c.Reranker.RateLimit < 0 {
		errs = append(errs, errors.New("reranker.rate_limit must not be negative"))
	}
	if c.Reranker.CacheSize < 0 {
		errs = append(errs, errors.New("reranker.cache_size must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	var errs []error
	if !c.History.InMemory && c.History.Path == "" {
		errs = append(errs, errors.New("history.path is required unless history.in_memory is set"))
	}
	if c.History.Retention < 0 {
		errs = append(errs, errors.New("history.retention must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateDataset() error {
	var errs []error
	if c.Dataset.Samples <= 0 {
		errs = append(errs, errors.New("dataset.samples must be positive"))
	}
	if c.Dataset.TargetRatio < 0 || c.Dataset.TargetRatio > 1 {
		errs = append(errs, fmt.Errorf("dataset.target_ratio must be in [0,1], got %v", c.Dataset.TargetRatio))
	}
	if c.Dataset.MaxAttempts <= 0 {
		errs = append(errs, errors.New("dataset.max_attempts must be positive"))
	}
	if c.Dataset.FullBodyProb < 0 || c.Dataset.FullBodyProb > 1 {
		errs = append(errs, fmt.Errorf("dataset.full_body_prob must be in [0,1], got %v", c.Dataset.FullBodyProb))
	}
	return errors.Join(errs...)
}

func (c *Config) validateLogging() error {
	var errs []error
	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", c.Logging.Level))
	}
	if !validLogFormats[c.Logging.Format] {
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
