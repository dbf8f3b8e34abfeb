// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// Config contains engine configuration.
type Config struct {
	// Limits bounds request size.
	Limits LimitsConfig `json:"limits"`

	// Timeout bounds one recommendation including the reranker call. Zero disables it.
	Timeout time.Duration `json:"timeout"`
}

// LimitsConfig bounds the work one request may cause.
type LimitsConfig struct {
	// MaxClosetItems is the largest closet accepted.
	MaxClosetItems int `json:"max_closet_items"`

	// MaxCandidates is the largest enumeration sent to the reranker.
	MaxCandidates int `json:"max_candidates"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxClosetItems: 200,
			MaxCandidates:  50000,
		},
		Timeout: 10 * time.Second,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Limits.MaxClosetItems <= 0 {
		errs = append(errs, fmt.Errorf("limits.max_closet_items must be positive, got %d", c.Limits.MaxClosetItems))
	}
	if c.Limits.MaxCandidates <= 0 {
		errs = append(errs, fmt.Errorf("limits.max_candidates must be positive, got %d", c.Limits.MaxCandidates))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %v", c.Timeout))
	}
	return errors.Join(errs...)
}
