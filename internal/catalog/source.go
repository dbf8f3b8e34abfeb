// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the duckdb database/sql driver
)

// ErrMissingColumn is returned when a source lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Source yields raw catalog rows.
type Source interface {
	Rows(ctx context.Context) ([]Row, error)
}

// checkHeader verifies that every required column is present.
func checkHeader(header []string) error {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = struct{}{}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := have[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// CSVSource reads a delimited styles file.
type CSVSource struct {
	Path string
}

// Rows parses the file. Short or long records are tolerated; a malformed
// quote aborts the read.
func (s CSVSource) Rows(ctx context.Context) ([]Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return readCSV(ctx, f)
}

func readCSV(ctx context.Context, r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []Row
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DuckDBSource scans a file through an in-memory DuckDB instance. It accepts
// csv, parquet and json files and anything else read_csv_auto understands.
type DuckDBSource struct {
	Path string
}

// scanQuery builds the table function call for the source file.
func (s DuckDBSource) scanQuery() string {
	lit := "'" + strings.ReplaceAll(s.Path, "'", "''") + "'"
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".parquet":
		return "SELECT * FROM read_parquet(" + lit + ")"
	case ".json", ".jsonl", ".ndjson":
		return "SELECT * FROM read_json_auto(" + lit + ")"
	default:
		return "SELECT * FROM read_csv_auto(" + lit + ", all_varchar=true, ignore_errors=true)"
	}
}

// Rows runs the scan and converts every column to text.
func (s DuckDBSource) Rows(ctx context.Context) ([]Row, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	rs, err := db.QueryContext(ctx, s.scanQuery())
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	defer rs.Close()

	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	if err := checkHeader(cols); err != nil {
		return nil, err
	}

	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}

	var rows []Row
	for rs.Next() {
		if err := rs.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if vals[i].Valid {
				row[col] = vals[i].String
			}
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return rows, nil
}

// SourceFor returns the source implementation named by kind ("csv" or "duckdb").
func SourceFor(kind, path string) (Source, error) {
	switch strings.ToLower(kind) {
	case "", "csv":
		return CSVSource{Path: path}, nil
	case "duckdb":
		return DuckDBSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", kind)
	}
}
