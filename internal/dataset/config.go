// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"errors"
	"fmt"

	"github.com/tomtom215/wardrobe/internal/catalog"
)

// Config controls a generation run.
type Config struct {
	// Samples is the number of samples (or pair attempts) requested.
	Samples int

	// TargetRatio is the desired positive fraction of a balanced run.
	TargetRatio float64

	// MaxAttempts caps the attempts spent on one sample.
	MaxAttempts int

	// Seed seeds the run's random source.
	Seed int64

	// ReportEvery logs progress every N samples. Zero disables progress logs.
	ReportEvery int

	// FullBodyProb is the chance a balanced attempt tries a full-body outfit.
	FullBodyProb float64

	// PositiveThreshold is the score a hard-negative positive must exceed.
	PositiveThreshold int

	// TempMin and TempMax bound the uniform integer temperature draw.
	TempMin int
	TempMax int

	// AllowedUsages restricts both the item pools and the events drawn.
	AllowedUsages []string

	// Shuffle shuffles hard-negative output before writing.
	Shuffle bool
}

// DefaultConfig returns the defaults used by `wardrobe generate`.
func DefaultConfig() *Config {
	return &Config{
		Samples:           20000,
		TargetRatio:       0.5,
		MaxAttempts:       500,
		Seed:              1,
		ReportEvery:       100,
		FullBodyProb:      0.10,
		PositiveThreshold: 10,
		TempMin:           -5,
		TempMax:           35,
		AllowedUsages: []string{
			catalog.UsageCasual, catalog.UsageEthnic, catalog.UsageFormal,
			catalog.UsageSports, catalog.UsageUnknown,
		},
		Shuffle: true,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Samples <= 0 {
		errs = append(errs, fmt.Errorf("samples must be positive, got %d", c.Samples))
	}
	if c.TargetRatio < 0 || c.TargetRatio > 1 {
		errs = append(errs, fmt.Errorf("target_ratio must be in [0,1], got %v", c.TargetRatio))
	}
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.ReportEvery < 0 {
		errs = append(errs, fmt.Errorf("report_every must not be negative, got %d", c.ReportEvery))
	}
	if c.FullBodyProb < 0 || c.FullBodyProb > 1 {
		errs = append(errs, fmt.Errorf("full_body_prob must be in [0,1], got %v", c.FullBodyProb))
	}
	if c.TempMin > c.TempMax {
		errs = append(errs, fmt.Errorf("temp_min %d exceeds temp_max %d", c.TempMin, c.TempMax))
	}
	if len(c.AllowedUsages) == 0 {
		errs = append(errs, errors.New("allowed_usages must not be empty"))
	}
	return errors.Join(errs...)
}
