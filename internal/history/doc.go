// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package history persists served recommendations in BadgerDB.
//
// Records are keyed by creation time so that List can walk the keyspace
// backwards and return the newest records first without sorting. A second
// key maps each record ID to its primary key for Get.
//
// Key layout:
//
//	rec:<20-digit unix nanos>:<id>  -> JSON Record
//	id:<id>                         -> primary key
//
// Both keys carry the configured retention as a native Badger TTL, so expired
// records disappear without a compaction pass of our own.
package history
