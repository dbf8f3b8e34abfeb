// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package sampling

import (
	"errors"
	"math/rand"

	"github.com/tomtom215/wardrobe/internal/catalog"
)

// ErrSamplingExhausted means every policy matched nothing, i.e. the pool is empty.
var ErrSamplingExhausted = errors.New("sampling exhausted: empty pool")

// Tier names the policy that produced a draw.
type Tier string

const (
	TierStrict        Tier = "strict"
	TierRelaxed       Tier = "relaxed"
	TierUnconstrained Tier = "unconstrained"
)

// Constraint describes the item a caller wants.
type Constraint struct {
	MasterCategory string
	ArticleTypes   []string
}

// NewConstraint builds a constraint from a master category and articleTypes.
func NewConstraint(masterCategory string, articleTypes ...string) Constraint {
	return Constraint{MasterCategory: masterCategory, ArticleTypes: articleTypes}
}

// Policy is one tier of the fallback chain. Select returns groups of ids
// whose union is the tier's match set; groups never overlap.
type Policy struct {
	Tier   Tier
	Select func(p *Pool, c *Constraint) [][]int
}

// StrictPolicy matches masterCategory and articleType.
func StrictPolicy() Policy {
	return Policy{Tier: TierStrict, Select: func(p *Pool, c *Constraint) [][]int {
		byType := p.byMasterType[c.MasterCategory]
		groups := make([][]int, 0, len(c.ArticleTypes))
		seen := make(map[string]struct{}, len(c.ArticleTypes))
		for _, t := range c.ArticleTypes {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			if ids := byType[t]; len(ids) > 0 {
				groups = append(groups, ids)
			}
		}
		return groups
	}}
}

// RelaxedPolicy matches masterCategory only.
func RelaxedPolicy() Policy {
	return Policy{Tier: TierRelaxed, Select: func(p *Pool, c *Constraint) [][]int {
		return [][]int{p.byMaster[c.MasterCategory]}
	}}
}

// UnconstrainedPolicy matches anything in the pool.
func UnconstrainedPolicy() Policy {
	return Policy{Tier: TierUnconstrained, Select: func(p *Pool, _ *Constraint) [][]int {
		return [][]int{p.ids}
	}}
}

// DefaultPolicies returns strict, relaxed, unconstrained.
func DefaultPolicies() []Policy {
	return []Policy{StrictPolicy(), RelaxedPolicy(), UnconstrainedPolicy()}
}

// ItemLookup resolves catalog ids.
type ItemLookup interface {
	ByID(id int) (catalog.Item, bool)
}

// Pool is a fixed set of candidate items indexed for constrained draws.
// Build it once per pool and reuse it across draws.
type Pool struct {
	ids          []int
	byMaster     map[string][]int
	byMasterType map[string]map[string][]int
}

// NewPool indexes ids. Unknown and repeated ids are ignored.
func NewPool(items ItemLookup, ids []int) *Pool {
	p := &Pool{
		ids:          make([]int, 0, len(ids)),
		byMaster:     make(map[string][]int),
		byMasterType: make(map[string]map[string][]int),
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		item, ok := items.ByID(id)
		if !ok {
			continue
		}
		seen[id] = struct{}{}
		p.ids = append(p.ids, id)
		p.byMaster[item.MasterCategory] = append(p.byMaster[item.MasterCategory], id)
		byType := p.byMasterType[item.MasterCategory]
		if byType == nil {
			byType = make(map[string][]int)
			p.byMasterType[item.MasterCategory] = byType
		}
		byType[item.ArticleType] = append(byType[item.ArticleType], id)
	}
	return p
}

// Len returns the number of items in the pool.
func (p *Pool) Len() int {
	return len(p.ids)
}

// IDs returns the pooled ids in insertion order.
func (p *Pool) IDs() []int {
	return p.ids
}

// Result is one successful draw.
type Result struct {
	ID   int
	Tier Tier
}

// Sampler draws items through an ordered policy chain. It owns its random
// source and is not safe for concurrent use.
type Sampler struct {
	rng      *rand.Rand
	policies []Policy
}

// New returns a sampler with the default policies.
func New(rng *rand.Rand) *Sampler {
	return NewWithPolicies(rng, DefaultPolicies())
}

// NewWithPolicies returns a sampler trying policies in order.
func NewWithPolicies(rng *rand.Rand, policies []Policy) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Sampler{rng: rng, policies: policies}
}

// Rand returns the sampler's random source so callers can share one stream.
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

// Draw picks one id from pool satisfying c as closely as the policy chain
// allows. The first policy with a non-empty match set wins.
func (s *Sampler) Draw(pool *Pool, c Constraint) (Result, error) {
	if pool == nil {
		return Result{}, ErrSamplingExhausted
	}
	for _, p := range s.policies {
		groups := p.Select(pool, &c)
		total := 0
		for _, g := range groups {
			total += len(g)
		}
		if total == 0 {
			continue
		}
		n := s.rng.Intn(total)
		for _, g := range groups {
			if n < len(g) {
				return Result{ID: g[n], Tier: p.Tier}, nil
			}
			n -= len(g)
		}
	}
	return Result{}, ErrSamplingExhausted
}

// Pick returns a uniform element of ids, or false if ids is empty.
func (s *Sampler) Pick(ids []int) (int, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	return ids[s.rng.Intn(len(ids))], true
}
