// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import "testing"

func TestRatioControllerAlternatesAtHalf(t *testing.T) {
	t.Parallel()

	r := NewRatioController(0.5)
	want := []Label{LabelPositive, LabelNegative, LabelPositive, LabelNegative, LabelPositive}
	for i, w := range want {
		got := r.Force()
		if got != w {
			t.Fatalf("step %d: Force() = %s, want %s", i, got, w)
		}
		r.Record(got)
	}
	if pos, neg := r.Counts(); pos != 3 || neg != 2 {
		t.Errorf("Counts() = %d, %d, want 3, 2", pos, neg)
	}
}

func TestRatioControllerTracksTarget(t *testing.T) {
	t.Parallel()

	for _, target := range []float64{0.2, 0.5, 0.7, 0.9} {
		r := NewRatioController(target)
		for i := 0; i < 1000; i++ {
			r.Record(r.Force())
		}
		if got := r.Fraction(); got < target-0.01 || got > target+0.01 {
			t.Errorf("target %v: Fraction() = %v", target, got)
		}
	}
}

func TestRatioControllerExtremes(t *testing.T) {
	t.Parallel()

	never := NewRatioController(0)
	always := NewRatioController(1)
	for i := 0; i < 10; i++ {
		if l := never.Force(); l != LabelNegative {
			t.Fatalf("target 0: Force() = %s", l)
		}
		never.Record(LabelNegative)
		if l := always.Force(); l != LabelPositive {
			t.Fatalf("target 1: Force() = %s", l)
		}
		always.Record(LabelPositive)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero samples", func(c *Config) { c.Samples = 0 }},
		{"ratio above one", func(c *Config) { c.TargetRatio = 1.5 }},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }},
		{"negative report", func(c *Config) { c.ReportEvery = -1 }},
		{"full body prob", func(c *Config) { c.FullBodyProb = -0.1 }},
		{"temperature range", func(c *Config) { c.TempMin, c.TempMax = 10, 0 }},
		{"no usages", func(c *Config) { c.AllowedUsages = nil }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}
