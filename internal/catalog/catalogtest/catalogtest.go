// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package catalogtest builds small in-memory catalogs for tests.
package catalogtest

import (
	"strconv"
	"testing"

	"github.com/tomtom215/wardrobe/internal/catalog"
)

// Spec describes one test item. Zero fields get sensible defaults.
type Spec struct {
	ID             int
	Gender         string
	MasterCategory string
	SubCategory    string
	ArticleType    string
	Colour         string
	Season         string
	Usage          string
}

// Row converts s to a raw catalog row, filling defaults derived from the articleType.
//
//nolint:gocritic // hugeParam: test helper
func Row(s Spec) catalog.Row {
	if s.Gender == "" {
		s.Gender = catalog.GenderMen
	}
	if s.Colour == "" {
		s.Colour = "Black"
	}
	if s.Season == "" {
		s.Season = catalog.SeasonSummer
	}
	if s.Usage == "" {
		s.Usage = catalog.UsageCasual
	}
	master, sub := categoriesFor(s.ArticleType)
	if s.MasterCategory == "" {
		s.MasterCategory = master
	}
	if s.SubCategory == "" {
		s.SubCategory = sub
	}
	return catalog.Row{
		catalog.ColID:             strconv.Itoa(s.ID),
		catalog.ColGender:         s.Gender,
		catalog.ColMasterCategory: s.MasterCategory,
		catalog.ColSubCategory:    s.SubCategory,
		catalog.ColArticleType:    s.ArticleType,
		catalog.ColBaseColour:     s.Colour,
		catalog.ColSeason:         s.Season,
		catalog.ColUsage:          s.Usage,
	}
}

func categoriesFor(articleType string) (master, sub string) {
	part, _ := catalog.DefaultTaxonomy().PartOf(articleType)
	switch part {
	case catalog.PartShoes:
		return "Footwear", "Shoes"
	case catalog.PartBottom:
		return "Apparel", "Bottomwear"
	case catalog.PartFullBody:
		return "Apparel", "Dress"
	default:
		return "Apparel", "Topwear"
	}
}

// Index builds an index from specs and fails the test on error.
func Index(t testing.TB, specs ...Spec) *catalog.Index {
	t.Helper()
	rows := make([]catalog.Row, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, Row(s))
	}
	idx, err := catalog.NewIndex(rows, catalog.Options{})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return idx
}
