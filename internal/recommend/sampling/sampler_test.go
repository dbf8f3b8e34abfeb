// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package sampling

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/catalog/catalogtest"
)

func fixture(t *testing.T) *catalog.Index {
	t.Helper()
	return catalogtest.Index(t,
		catalogtest.Spec{ID: 1, ArticleType: "Tshirts"},
		catalogtest.Spec{ID: 2, ArticleType: "Shirts"},
		catalogtest.Spec{ID: 3, ArticleType: "Jeans"},
		catalogtest.Spec{ID: 4, ArticleType: "Sneakers"},
		catalogtest.Spec{ID: 5, ArticleType: "Jackets"},
		catalogtest.Spec{ID: 6, ArticleType: "Tops", MasterCategory: "Personal Care"},
	)
}

func TestDrawTiers(t *testing.T) {
	t.Parallel()

	idx := fixture(t)
	tests := []struct {
		name     string
		pool     []int
		c        Constraint
		wantTier Tier
		allowed  []int
	}{
		{"strict", []int{1, 2, 3, 4}, NewConstraint("Apparel", "Tshirts", "Shirts"), TierStrict, []int{1, 2}},
		{"relaxed", []int{1, 3, 4}, NewConstraint("Apparel", "Dresses"), TierRelaxed, []int{1, 3}},
		{"relaxed ignores other masters", []int{4, 5, 6}, NewConstraint("Footwear", "Boots"), TierRelaxed, []int{4}},
		{"unconstrained", []int{4, 6}, NewConstraint("Apparel", "Tshirts"), TierUnconstrained, []int{4, 6}},
		{"unknown ids ignored", []int{99, 6}, NewConstraint("Apparel"), TierUnconstrained, []int{6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New(rand.New(rand.NewSource(7)))
			pool := NewPool(idx, tt.pool)
			for i := 0; i < 50; i++ {
				res, err := s.Draw(pool, tt.c)
				if err != nil {
					t.Fatalf("Draw() error = %v", err)
				}
				if res.Tier != tt.wantTier {
					t.Fatalf("Tier = %s, want %s", res.Tier, tt.wantTier)
				}
				if !contains(tt.allowed, res.ID) {
					t.Fatalf("ID = %d, want one of %v", res.ID, tt.allowed)
				}
			}
		})
	}
}

func TestDrawExhausted(t *testing.T) {
	t.Parallel()

	idx := fixture(t)
	s := New(nil)
	for _, ids := range [][]int{nil, {}, {98, 99}} {
		if _, err := s.Draw(NewPool(idx, ids), NewConstraint("Apparel", "Tshirts")); !errors.Is(err, ErrSamplingExhausted) {
			t.Errorf("Draw(%v) error = %v, want ErrSamplingExhausted", ids, err)
		}
	}
	if _, err := s.Draw(nil, NewConstraint("Apparel")); !errors.Is(err, ErrSamplingExhausted) {
		t.Errorf("Draw(nil pool) error = %v, want ErrSamplingExhausted", err)
	}
}

func TestDrawUniform(t *testing.T) {
	t.Parallel()

	s := New(rand.New(rand.NewSource(42)))
	pool := NewPool(fixture(t), []int{1, 2, 3})
	counts := map[int]int{}
	for i := 0; i < 2000; i++ {
		res, err := s.Draw(pool, NewConstraint("Apparel", "Tshirts", "Shirts", "Tshirts"))
		if err != nil {
			t.Fatal(err)
		}
		counts[res.ID]++
	}
	for _, id := range []int{1, 2} {
		if counts[id] < 800 {
			t.Errorf("id %d drawn %d/2000 times, want roughly half", id, counts[id])
		}
	}
}

func TestDrawCustomPolicies(t *testing.T) {
	t.Parallel()

	strictOnly := NewWithPolicies(nil, []Policy{StrictPolicy()})
	if _, err := strictOnly.Draw(NewPool(fixture(t), []int{3, 4}), NewConstraint("Apparel", "Tshirts")); !errors.Is(err, ErrSamplingExhausted) {
		t.Errorf("strict-only Draw() error = %v, want ErrSamplingExhausted", err)
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	s := New(nil)
	if _, ok := s.Pick(nil); ok {
		t.Error("Pick(nil) reported a value")
	}
	if id, ok := s.Pick([]int{9}); !ok || id != 9 {
		t.Errorf("Pick([9]) = %d, %v", id, ok)
	}
}

func TestNewPoolSkipsUnknownAndRepeated(t *testing.T) {
	t.Parallel()

	pool := NewPool(fixture(t), []int{1, 1, 99, 2})
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
