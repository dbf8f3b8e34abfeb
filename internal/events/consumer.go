// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/history"
)

// RecordSaver persists history records.
type RecordSaver interface {
	Save(ctx context.Context, rec *history.Record) error
}

// ConsumerConfig tunes save retries.
type ConsumerConfig struct {
	MaxAttempts  int
	RetryBackoff time.Duration
}

// DefaultConsumerConfig returns production defaults.
func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{MaxAttempts: 3, RetryBackoff: 100 * time.Millisecond}
}

// Consumer persists served recommendations. It implements suture.Service.
type Consumer struct {
	subscriber message.Subscriber
	saver      RecordSaver
	config     ConsumerConfig
	topic      string
	logger     zerolog.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// NewConsumer subscribes to TopicServed when served.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConsumer(sub message.Subscriber, saver RecordSaver, cfg ConsumerConfig, logger zerolog.Logger) *Consumer {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Consumer{
		subscriber: sub,
		saver:      saver,
		config:     cfg,
		topic:      TopicServed,
		logger:     logger.With().Str("component", "history-consumer").Logger(),
		ready:      make(chan struct{}),
	}
}

// Ready is closed once the first subscription is established.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

// Serve processes messages until ctx ends. Messages are always acked: a
// record that cannot be decoded or saved after MaxAttempts is logged and dropped.
func (c *Consumer) Serve(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", c.topic, err)
	}
	c.readyOnce.Do(func() { close(c.ready) })
	c.logger.Info().Str("topic", c.topic).Msg("history consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if err := c.process(ctx, msg); err != nil {
				c.logger.Error().Err(err).
					Str("message_uuid", msg.UUID).
					Str("request_id", msg.Metadata.Get("request_id")).
					Msg("dropping history record")
			}
			msg.Ack()
		}
	}
}

// String names the service in supervisor logs.
func (c *Consumer) String() string {
	return "history-consumer"
}

func (c *Consumer) process(ctx context.Context, msg *message.Message) error {
	var rec history.Record
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}

	var err error
	for attempt := 1; attempt <= c.config.MaxAttempts; attempt++ {
		if err = c.saver.Save(ctx, &rec); err == nil {
			return nil
		}
		if attempt == c.config.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.config.RetryBackoff * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("save record after %d attempts: %w", c.config.MaxAttempts, err)
}
