// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"testing"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/catalog/catalogtest"
)

// Fixture ids.
const (
	casualTee      = 1
	casualJeans    = 2
	casualJacket   = 3
	whiteSneakers  = 4
	formalShirt    = 5
	formalTrousers = 6
	formalShoes    = 7
	redDress       = 8
	greyBlazer     = 9
	smartShirt     = 10
	woolSweater    = 11
)

func fixtureIndex(t testing.TB) *catalog.Index {
	t.Helper()
	return catalogtest.Index(t,
		catalogtest.Spec{ID: casualTee, ArticleType: "Tshirts", Colour: "Black", Season: catalog.SeasonSummer},
		catalogtest.Spec{ID: casualJeans, ArticleType: "Jeans", Colour: "Blue", Season: catalog.SeasonSummer},
		catalogtest.Spec{ID: casualJacket, ArticleType: "Jackets", Colour: "Black", Season: catalog.SeasonWinter},
		catalogtest.Spec{ID: whiteSneakers, ArticleType: "Sneakers", Colour: "White", Season: catalog.SeasonSummer},
		catalogtest.Spec{ID: formalShirt, ArticleType: "Shirts", Colour: "White", Season: catalog.SeasonFall, Usage: catalog.UsageFormal},
		catalogtest.Spec{ID: formalTrousers, ArticleType: "Trousers", Colour: "Black", Season: catalog.SeasonFall, Usage: catalog.UsageFormal},
		catalogtest.Spec{ID: formalShoes, ArticleType: "Formal Shoes", Colour: "Black", Season: catalog.SeasonFall, Usage: catalog.UsageFormal},
		catalogtest.Spec{ID: redDress, ArticleType: "Dresses", Colour: "Red", Season: catalog.SeasonSummer, Gender: catalog.GenderWomen},
		catalogtest.Spec{ID: greyBlazer, ArticleType: "Blazers", Colour: "Grey", Season: catalog.SeasonFall, Usage: catalog.UsageFormal},
		catalogtest.Spec{ID: smartShirt, ArticleType: "Shirts", Colour: "Blue", Season: catalog.SeasonFall, Usage: catalog.UsageSmartCasual},
		catalogtest.Spec{ID: woolSweater, ArticleType: "Sweaters", Colour: "Grey", Season: catalog.SeasonWinter},
	)
}

func outfit(top, bottom, outer, shoes, fullBody int) Outfit {
	var o Outfit
	for slot, id := range map[Slot]int{SlotTop: top, SlotBottom: bottom, SlotOuter: outer, SlotShoes: shoes, SlotFullBody: fullBody} {
		if id != 0 {
			o = o.With(slot, id)
		}
	}
	return o
}

func contribution(b Breakdown, rule string) int {
	for _, c := range b.Contributions {
		if c.Rule == rule {
			return c.Points
		}
	}
	return 0
}
