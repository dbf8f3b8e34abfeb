// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"sort"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/recommend/sampling"
)

// poolKey selects items by gender pool, usage and part. Empty usage or part
// matches anything.
type poolKey struct {
	gender string
	usage  string
	part   catalog.Part
}

// pools precomputes the id lists a run draws from.
type pools struct {
	index   *catalog.Index
	ids     map[poolKey][]int
	indexed map[poolKey]*sampling.Pool
	usages  []string
}

// newPools indexes every gender pool restricted to allowed usages. A nil
// allowed list keeps every usage.
func newPools(index *catalog.Index, allowed []string) *pools {
	allow := make(map[string]struct{}, len(allowed))
	for _, u := range allowed {
		allow[u] = struct{}{}
	}

	p := &pools{
		index:   index,
		ids:     make(map[poolKey][]int),
		indexed: make(map[poolKey]*sampling.Pool),
	}
	usages := make(map[string]struct{})
	for _, g := range []string{catalog.GenderMen, catalog.GenderWomen, catalog.GenderUnisex} {
		for _, id := range index.GenderPool(g) {
			item, _ := index.ByID(id)
			if len(allow) > 0 {
				if _, ok := allow[item.Usage]; !ok {
					continue
				}
			}
			usages[item.Usage] = struct{}{}
			for _, k := range []poolKey{
				{gender: g},
				{gender: g, usage: item.Usage},
				{gender: g, part: item.Part},
				{gender: g, usage: item.Usage, part: item.Part},
			} {
				p.ids[k] = append(p.ids[k], id)
			}
		}
	}
	for u := range usages {
		p.usages = append(p.usages, u)
	}
	sort.Strings(p.usages)
	return p
}

// get returns the ids for a key, in catalog order.
func (p *pools) get(gender, usage string, part catalog.Part) []int {
	return p.ids[poolKey{gender: gender, usage: usage, part: part}]
}

// sampling returns the sampler pool for gender and usage, built on first use.
func (p *pools) sampling(gender, usage string) *sampling.Pool {
	k := poolKey{gender: gender, usage: usage}
	sp, ok := p.indexed[k]
	if !ok {
		sp = sampling.NewPool(p.index, p.ids[k])
		p.indexed[k] = sp
	}
	return sp
}

// otherUsages returns the usages present in the pools other than usage.
func (p *pools) otherUsages(usage string) []string {
	out := make([]string, 0, len(p.usages))
	for _, u := range p.usages {
		if u != usage {
			out = append(out, u)
		}
	}
	return out
}
