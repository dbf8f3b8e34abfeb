// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/catalog/catalogtest"
)

func fixtureIndex(t *testing.T) *catalog.Index {
	t.Helper()
	men, women, unisex := catalog.GenderMen, catalog.GenderWomen, catalog.GenderUnisex
	casual, formal, sports, ethnic := catalog.UsageCasual, catalog.UsageFormal, catalog.UsageSports, catalog.UsageEthnic
	fall := catalog.SeasonFall

	return catalogtest.Index(t,
		catalogtest.Spec{ID: 1, Gender: men, ArticleType: "Tshirts", Usage: casual, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 2, Gender: men, ArticleType: "Jeans", Usage: casual, Season: fall, Colour: "Blue"},
		catalogtest.Spec{ID: 3, Gender: men, ArticleType: "Sneakers", Usage: casual, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 4, Gender: men, ArticleType: "Jackets", Usage: casual, Season: fall, Colour: "Grey"},
		catalogtest.Spec{ID: 5, Gender: men, ArticleType: "Shirts", Usage: formal, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 6, Gender: men, ArticleType: "Trousers", Usage: formal, Season: fall, Colour: "Black"},
		catalogtest.Spec{ID: 7, Gender: men, ArticleType: "Formal Shoes", Usage: formal, Season: fall, Colour: "Black"},
		catalogtest.Spec{ID: 8, Gender: men, ArticleType: "Blazers", Usage: formal, Season: fall, Colour: "Grey"},
		catalogtest.Spec{ID: 9, Gender: women, ArticleType: "Dresses", Usage: casual, Season: fall, Colour: "Red"},
		catalogtest.Spec{ID: 10, Gender: women, ArticleType: "Heels", Usage: casual, Season: fall, Colour: "Black"},
		catalogtest.Spec{ID: 11, Gender: women, ArticleType: "Tops", Usage: casual, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 12, Gender: women, ArticleType: "Skirts", Usage: casual, Season: fall, Colour: "Black"},
		catalogtest.Spec{ID: 13, Gender: women, ArticleType: "Jackets", Usage: casual, Season: fall, Colour: "Grey"},
		catalogtest.Spec{ID: 14, Gender: unisex, ArticleType: "Sneakers", Usage: sports, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 15, Gender: unisex, ArticleType: "Track Pants", Usage: sports, Season: fall, Colour: "Black"},
		catalogtest.Spec{ID: 16, Gender: unisex, ArticleType: "Tshirts", Usage: sports, Season: fall, Colour: "Grey"},
		catalogtest.Spec{ID: 17, Gender: unisex, ArticleType: "Jackets", Usage: sports, Season: fall, Colour: "Black"},
		catalogtest.Spec{ID: 18, Gender: men, ArticleType: "Kurtas", Usage: ethnic, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 19, Gender: men, ArticleType: "Churidar", Usage: ethnic, Season: fall, Colour: "White"},
		catalogtest.Spec{ID: 20, Gender: men, ArticleType: "Sandals", Usage: ethnic, Season: fall, Colour: "Brown"},
		catalogtest.Spec{ID: 21, Gender: men, ArticleType: "Shirts", Usage: catalog.UsageSmartCasual, Season: fall, Colour: "Blue"},
	)
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Samples = 200
	cfg.Seed = 42
	cfg.ReportEvery = 0
	return cfg
}

func newTestGenerator(t *testing.T, cfg *Config) *Generator {
	t.Helper()
	g, err := NewGenerator(cfg, fixtureIndex(t), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}
