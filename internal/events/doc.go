// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package events carries served recommendations from the request path to the
// history store over an in-process watermill pub/sub.
//
// Flow:
//
//	Engine.Recommend -> Publisher.RecordServed -> gochannel topic
//	    "recommendation.served" -> Consumer.Serve -> history.Store.Save
//
// The request path only pays for a JSON marshal and a channel send. Writes to
// Badger happen on the consumer goroutine, which runs under the supervisor.
package events
