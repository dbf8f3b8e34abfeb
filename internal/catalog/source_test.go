// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const stylesCSV = "\ufeffid,gender,masterCategory,subCategory,articleType,baseColour,season,year,usage,productDisplayName\n" +
	"15970,Men,Apparel,Topwear,Shirts,Navy Blue,Fall,2011,Casual,Turtle Check Men Navy Blue Shirt\n" +
	"39386,Men,Apparel,Bottomwear,Jeans,Blue,Summer,2012,Casual,Peter England Men Party Blue Jeans\n" +
	"59263,Women,Accessories,Watches,Watches,Silver,Winter,2016,Casual,Titan Women Silver Watch\n" +
	"21379,Men,Apparel,Bottomwear,Track Pants,Black,Fall,2011,,Manchester United Men Track Pants\n" +
	"9204,Men,Footwear,Shoes,Casual Shoes,Black,Summer,2011,Casual,\"Puma Men Future Cat, Black\"\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVSourceRows(t *testing.T) {
	t.Parallel()

	src := CSVSource{Path: writeFile(t, "styles.csv", stylesCSV)}
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}
	if rows[0][ColID] != "15970" {
		t.Errorf("BOM not stripped: first id = %q", rows[0][ColID])
	}
	if rows[4][ColName] != "Puma Men Future Cat, Black" {
		t.Errorf("quoted field = %q", rows[4][ColName])
	}

	idx, err := NewIndex(rows, Options{})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
	stats := idx.Stats()
	if stats.Dropped[DropUnmappedPart] != 1 || stats.Dropped[DropMissingFields] != 1 {
		t.Errorf("Dropped = %v", stats.Dropped)
	}
}

func TestCSVSourceMissingColumn(t *testing.T) {
	t.Parallel()

	src := CSVSource{Path: writeFile(t, "styles.csv", "id,gender,articleType\n1,Men,Shirts\n")}
	_, err := src.Rows(context.Background())
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Rows() error = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "masterCategory") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := CSVSource{Path: filepath.Join(t.TempDir(), "nope.csv")}.Rows(context.Background())
	if err == nil {
		t.Error("Rows() error = nil for missing file")
	}
}

func TestDuckDBSourceRows(t *testing.T) {
	t.Parallel()

	src := DuckDBSource{Path: writeFile(t, "styles.csv", strings.TrimPrefix(stylesCSV, "\ufeff"))}
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}
	idx, err := NewIndex(rows, Options{})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	if item, ok := idx.ByID(39386); !ok || item.Part != PartBottom {
		t.Errorf("ByID(39386) = (%+v, %v)", item, ok)
	}
}

func TestDuckDBScanQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"styles.csv", "read_csv_auto('styles.csv'"},
		{"styles.parquet", "read_parquet('styles.parquet')"},
		{"styles.jsonl", "read_json_auto('styles.jsonl')"},
		{"it's.csv", "read_csv_auto('it''s.csv'"},
	}
	for _, tt := range tests {
		if got := (DuckDBSource{Path: tt.path}).scanQuery(); !strings.Contains(got, tt.want) {
			t.Errorf("scanQuery(%q) = %q, want to contain %q", tt.path, got, tt.want)
		}
	}
}

func TestSourceFor(t *testing.T) {
	t.Parallel()

	if s, err := SourceFor("", "a.csv"); err != nil || s.(CSVSource).Path != "a.csv" {
		t.Errorf("SourceFor(\"\") = %v, %v", s, err)
	}
	if s, err := SourceFor("DuckDB", "a.parquet"); err != nil || s.(DuckDBSource).Path != "a.parquet" {
		t.Errorf("SourceFor(DuckDB) = %v, %v", s, err)
	}
	if _, err := SourceFor("sqlite", "a.db"); err == nil {
		t.Error("SourceFor(sqlite) error = nil")
	}
}

func TestScanImageDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"15970.jpg", "39386.PNG", "notes.txt", "abc.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "9204.jpg"), 0o700); err != nil {
		t.Fatal(err)
	}

	set, err := ScanImageDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ScanImageDir() error = %v", err)
	}
	if len(set) != 2 || !set.HasAsset(15970) || !set.HasAsset(39386) || set.HasAsset(9204) {
		t.Errorf("ScanImageDir() = %v", set)
	}
}

func TestLoadRequiresAssets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "15970.jpg"), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	idx, err := Load(context.Background(), LoadOptions{
		Source:        CSVSource{Path: writeFile(t, "styles.csv", stylesCSV)},
		ImagesDir:     dir,
		RequireImages: true,
	}, zerolog.New(&buf))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
	if idx.Stats().Dropped[DropMissingAsset] != 2 {
		t.Errorf("Dropped = %v", idx.Stats().Dropped)
	}
	if !strings.Contains(buf.String(), "catalog loaded") {
		t.Errorf("missing load log: %s", buf.String())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	if _, err := Load(context.Background(), LoadOptions{}, zerolog.Nop()); err == nil {
		t.Error("Load() without source error = nil")
	}

	_, err := Load(context.Background(), LoadOptions{
		Source: CSVSource{Path: writeFile(t, "styles.csv", "id,gender,masterCategory,subCategory,articleType,baseColour,season,usage\n")},
	}, zerolog.Nop())
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Load(empty) error = %v, want ErrEmptyCatalog", err)
	}

	_, err = Load(context.Background(), LoadOptions{
		Source:        CSVSource{Path: writeFile(t, "styles.csv", stylesCSV)},
		ImagesDir:     filepath.Join(t.TempDir(), "missing"),
		RequireImages: true,
	}, zerolog.Nop())
	if err == nil {
		t.Error("Load() with missing image dir error = nil")
	}
}
