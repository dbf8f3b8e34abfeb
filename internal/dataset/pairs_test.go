// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/tomtom215/wardrobe/internal/recommend"
)

func TestRunPairs(t *testing.T) {
	t.Parallel()

	idx := fixtureIndex(t)
	cfg := testConfig()
	cfg.Samples = 100
	g := newTestGenerator(t, cfg)

	sink := &SliceSink[Pair]{}
	report, err := g.RunPairs(context.Background(), sink)
	if err != nil {
		t.Fatalf("RunPairs() error = %v", err)
	}
	if report.Generated == 0 || report.Generated+report.Skipped != cfg.Samples {
		t.Fatalf("report = %+v", report)
	}

	for i, p := range sink.Records {
		if !strings.HasPrefix(p.Prompt, "Context: ") || !strings.HasSuffix(p.Prompt, "Which of the two outfits is better?\n") {
			t.Errorf("pair %d: prompt %q", i, p.Prompt)
		}
		chosen, err := recommend.ParseDescription(p.Chosen)
		if err != nil {
			t.Fatalf("pair %d: chosen %q: %v", i, p.Chosen, err)
		}
		rejected, err := recommend.ParseDescription(p.Rejected)
		if err != nil {
			t.Fatalf("pair %d: rejected %q: %v", i, p.Rejected, err)
		}

		diff := chosen.DiffSlots(rejected)
		if len(diff) != 1 {
			t.Fatalf("pair %d: %d slots differ", i, len(diff))
		}

		usages := map[string]bool{}
		for _, id := range chosen.IDs() {
			item, _ := idx.ByID(id)
			usages[item.Usage] = true
		}
		if len(usages) != 1 {
			t.Errorf("pair %d: chosen mixes usages %v", i, usages)
		}
		swapped, _ := rejected.Get(diff[0])
		item, _ := idx.ByID(swapped)
		if usages[item.Usage] {
			t.Errorf("pair %d: rejected swap keeps usage %s", i, item.Usage)
		}
	}
}

func TestPairPrompt(t *testing.T) {
	t.Parallel()

	c := recommend.Context{Event: "Hiking", Temperature: 12, Condition: recommend.ConditionClear, Gender: "Women"}
	want := "Context: Women, 12°C, Clear, Hiking\nWhich of the two outfits is better?\n"
	if got := PairPrompt(c); got != want {
		t.Errorf("PairPrompt() = %q, want %q", got, want)
	}
}
