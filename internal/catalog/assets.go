// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AssetSet is the set of item ids with a verified image.
type AssetSet map[int]struct{}

// HasAsset implements AssetChecker.
func (s AssetSet) HasAsset(id int) bool {
	_, ok := s[id]
	return ok
}

// imageExt lists accepted image file extensions.
var imageExt = []string{".jpg", ".jpeg", ".png", ".webp"}

// ScanImageDir indexes files named "<id>.<ext>" in dir. Other files are ignored.
func ScanImageDir(ctx context.Context, dir string) (AssetSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}

	set := make(AssetSet, len(entries))
	for i, e := range entries {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		for _, ext := range imageExt {
			if stem, ok := strings.CutSuffix(name, ext); ok {
				if id, err := strconv.Atoi(stem); err == nil {
					set[id] = struct{}{}
				}
				break
			}
		}
	}
	return set, nil
}
