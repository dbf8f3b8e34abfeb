// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicServed carries one history.Record per served recommendation.
const TopicServed = "recommendation.served"

// DefaultBufferSize is the per-subscriber channel buffer.
const DefaultBufferSize = 256

// NewBus creates the in-process pub/sub shared by Publisher and Consumer.
// Messages published while no consumer is subscribed are dropped.
func NewBus(buffer int, logger watermill.LoggerAdapter) *gochannel.GoChannel {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(buffer),
	}, logger)
}
