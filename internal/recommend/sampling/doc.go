// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package sampling draws single catalog items for synthetic outfits.

A draw walks an ordered list of policies over a gender-filtered pool and
takes a uniform pick from the first policy whose match set is non-empty:

  - strict: masterCategory matches and articleType is one of the requested types
  - relaxed: masterCategory matches
  - unconstrained: any item in the pool

The walk never backtracks, so a draw only fails when the pool holds no
known item at all. That failure is ErrSamplingExhausted.

The sampler is used by dataset generation only. Live inference enumerates
a fixed closet instead (see package recommend).
*/
package sampling
