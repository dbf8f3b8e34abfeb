// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package dataset manufactures labeled training data from the catalog.

Three runs are supported, all single-threaded and driven by one seeded
random source so a seed reproduces a run exactly:

Balanced (Generator.Run):
  - Before each sample a RatioController decides whether the sample must be
    Positive or Negative by comparing the running positive fraction with the
    target ratio.
  - Attempts draw a context and an outfit through the hybrid sampler until the
    outfit carries the forced label. After MaxAttempts the sample is skipped
    with ErrRatioAttemptsExhausted and the run continues.

Hard negatives (Generator.RunHardNegatives):
  - Each accepted sample is a scorer-approved positive followed by the
    negatives a Miner derives from it by perturbing exactly one slot.
  - Labels are rationale sentences.

Preference pairs (Generator.RunPairs):
  - A chosen outfit drawn from the expected-usage pool and a rejected copy
    with one slot swapped for an item of another usage.

Output goes through a Sink. JSONArrayWriter and JSONLWriter stream records
with goccy/go-json.
*/
package dataset
