// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package catalog loads wardrobe item rows and builds the read-only Index
// every other component queries.
//
// # Classification
//
// An item's Part is a pure function of its articleType, looked up in the
// Taxonomy when the Index is built. Items whose articleType is not mapped are
// dropped and counted; classification never changes afterwards. Closet-level
// overrides (topwear that is really outerwear) live in the recommend package
// and are layered on top of Part, never written back.
//
// # Sources
//
//   - CSVSource: a styles.csv style file read with encoding/csv
//   - DuckDBSource: any file DuckDB can scan (csv, parquet, json) through read_csv_auto/read_parquet
//
// Rows missing a required field, rows without a verified image asset (when
// assets are required) and duplicate ids are dropped and counted per reason.
// An Index with no items is a configuration error (ErrEmptyCatalog).
//
// # Thread Safety
//
// Index is immutable after NewIndex returns and may be shared across
// goroutines without locking. Slices returned by its accessors must not be
// modified by callers.
package catalog
