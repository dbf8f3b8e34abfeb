// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyCatalog is returned when no row survives indexing.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Column names of a raw item row.
const (
	ColID             = "id"
	ColGender         = "gender"
	ColMasterCategory = "masterCategory"
	ColSubCategory    = "subCategory"
	ColArticleType    = "articleType"
	ColBaseColour     = "baseColour"
	ColSeason         = "season"
	ColUsage          = "usage"
	ColName           = "productDisplayName"
)

// RequiredColumns must be present in every source.
var RequiredColumns = []string{
	ColID, ColGender, ColMasterCategory, ColSubCategory,
	ColArticleType, ColBaseColour, ColSeason, ColUsage,
}

// Row is one raw record keyed by column name.
type Row map[string]string

// DropReason labels why a row was excluded from the index.
type DropReason string

// Drop reasons.
const (
	DropMissingFields DropReason = "missing_fields"
	DropUnmappedPart  DropReason = "unmapped_part"
	DropMissingAsset  DropReason = "missing_asset"
	DropDuplicateID   DropReason = "duplicate_id"
	DropInvalidID     DropReason = "invalid_id"
)

// Stats summarizes an index build.
type Stats struct {
	Rows    int                `json:"rows"`
	Indexed int                `json:"indexed"`
	Dropped map[DropReason]int `json:"dropped"`
}

// TotalDropped returns the number of rows excluded for any reason.
func (s Stats) TotalDropped() int {
	n := 0
	for _, c := range s.Dropped {
		n += c
	}
	return n
}

// AssetChecker reports whether an item has a verified image asset.
type AssetChecker interface {
	HasAsset(id int) bool
}

// Options controls index construction.
type Options struct {
	// Taxonomy maps articleTypes to parts. Nil uses DefaultTaxonomy.
	Taxonomy *Taxonomy

	// Assets restricts the index to items with an image. Nil keeps every item.
	Assets AssetChecker
}

// Index is the read-only, part-classified view of the catalog.
type Index struct {
	taxonomy *Taxonomy
	items    map[int]Item
	order    []int
	byPart   map[Part][]int
	byUsage  map[string][]int
	byGender map[string][]int
	stats    Stats
}

// NewIndex classifies rows and builds the lookup tables. Rows are processed in
// order; the first row wins when ids repeat.
func NewIndex(rows []Row, opts Options) (*Index, error) {
	tax := opts.Taxonomy
	if tax == nil {
		tax = DefaultTaxonomy()
	}

	idx := &Index{
		taxonomy: tax,
		items:    make(map[int]Item, len(rows)),
		order:    make([]int, 0, len(rows)),
		byPart:   make(map[Part][]int),
		byUsage:  make(map[string][]int),
		byGender: make(map[string][]int),
		stats:    Stats{Rows: len(rows), Dropped: make(map[DropReason]int)},
	}

	for _, row := range rows {
		item, reason, ok := idx.classify(row, opts.Assets)
		if !ok {
			idx.stats.Dropped[reason]++
			continue
		}
		idx.add(item)
	}

	idx.stats.Indexed = len(idx.order)
	if idx.stats.Indexed == 0 {
		return nil, ErrEmptyCatalog
	}
	return idx, nil
}

func (idx *Index) classify(row Row, assets AssetChecker) (Item, DropReason, bool) {
	for _, col := range RequiredColumns {
		if strings.TrimSpace(row[col]) == "" {
			return Item{}, DropMissingFields, false
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[ColID]))
	if err != nil {
		return Item{}, DropInvalidID, false
	}
	if _, dup := idx.items[id]; dup {
		return Item{}, DropDuplicateID, false
	}

	articleType := strings.TrimSpace(row[ColArticleType])
	part, ok := idx.taxonomy.PartOf(articleType)
	if !ok {
		return Item{}, DropUnmappedPart, false
	}

	if assets != nil && !assets.HasAsset(id) {
		return Item{}, DropMissingAsset, false
	}

	return Item{
		ID:             id,
		Part:           part,
		Gender:         strings.TrimSpace(row[ColGender]),
		MasterCategory: strings.TrimSpace(row[ColMasterCategory]),
		SubCategory:    strings.TrimSpace(row[ColSubCategory]),
		ArticleType:    articleType,
		BaseColour:     strings.TrimSpace(row[ColBaseColour]),
		Season:         strings.TrimSpace(row[ColSeason]),
		Usage:          strings.TrimSpace(row[ColUsage]),
		Name:           strings.TrimSpace(row[ColName]),
	}, "", true
}

//nolint:gocritic // hugeParam: Item is stored by value
func (idx *Index) add(item Item) {
	idx.items[item.ID] = item
	idx.order = append(idx.order, item.ID)
	idx.byPart[item.Part] = append(idx.byPart[item.Part], item.ID)
	idx.byUsage[item.Usage] = append(idx.byUsage[item.Usage], item.ID)
	idx.byGender[item.Gender] = append(idx.byGender[item.Gender], item.ID)
}

// ByID returns the item with the given id.
func (idx *Index) ByID(id int) (Item, bool) {
	item, ok := idx.items[id]
	return item, ok
}

// ByPart returns the ids classified as p, in load order.
func (idx *Index) ByPart(p Part) []int {
	return idx.byPart[p]
}

// ByUsage returns the ids with the given usage, in load order.
func (idx *Index) ByUsage(usage string) []int {
	return idx.byUsage[usage]
}

// ByGender returns the ids whose gender is exactly gender, in load order.
func (idx *Index) ByGender(gender string) []int {
	return idx.byGender[gender]
}

// GenderPool returns the ids wearable by gender: that gender plus Unisex, in load order.
func (idx *Index) GenderPool(gender string) []int {
	if gender == GenderUnisex {
		return idx.byGender[GenderUnisex]
	}
	pool := make([]int, 0, len(idx.byGender[gender])+len(idx.byGender[GenderUnisex]))
	for _, id := range idx.order {
		g := idx.items[id].Gender
		if g == gender || g == GenderUnisex {
			pool = append(pool, id)
		}
	}
	return pool
}

// IDs returns every indexed id in load order.
func (idx *Index) IDs() []int {
	return idx.order
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return len(idx.order)
}

// Taxonomy returns the tables the index was built with.
func (idx *Index) Taxonomy() *Taxonomy {
	return idx.taxonomy
}

// Stats returns a copy of the build statistics.
func (idx *Index) Stats() Stats {
	s := Stats{Rows: idx.stats.Rows, Indexed: idx.stats.Indexed, Dropped: make(map[DropReason]int, len(idx.stats.Dropped))}
	for k, v := range idx.stats.Dropped {
		s.Dropped[k] = v
	}
	return s
}
