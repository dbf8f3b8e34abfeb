// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package events

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/history"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// flakySaver fails the first failures calls, then records.
type flakySaver struct {
	mu       sync.Mutex
	failures int
	calls    int
	saved    []history.Record
	done     chan struct{}
}

func newFlakySaver(failures int) *flakySaver {
	return &flakySaver{failures: failures, done: make(chan struct{}, 16)}
}

func (s *flakySaver) Save(_ context.Context, rec *history.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return errors.New("disk full")
	}
	s.saved = append(s.saved, *rec)
	s.done <- struct{}{}
	return nil
}

func (s *flakySaver) snapshot() (int, []history.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls, append([]history.Record(nil), s.saved...)
}

func testResponse(id string) *recommend.Response {
	return &recommend.Response{
		RequestID:   id,
		Context:     recommend.Context{Event: "Date", Temperature: 18, Condition: "Clear", Gender: "Women"},
		Best:        recommend.BestCombination{Description: "Full Body(Red Dresses #8)", IDs: []int{8}},
		BestScore:   0.8,
		Explanation: "Positive: Red Dresses suits Date",
		Reranker:    "heuristic",
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func startConsumer(t *testing.T, bus *gochannel.GoChannel, saver RecordSaver, cfg ConsumerConfig) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	consumer := NewConsumer(bus, saver, cfg, zerolog.Nop())
	errCh := make(chan error, 1)
	go func() { errCh <- consumer.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errCh
	})
	select {
	case <-consumer.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not subscribe")
	}
}

func waitSaved(t *testing.T, s *flakySaver) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("record was not saved")
	}
}

func TestPublishedRecordReachesSaver(t *testing.T) {
	t.Parallel()

	bus := NewBus(8, watermill.NopLogger{})
	defer bus.Close()
	saver := newFlakySaver(0)
	startConsumer(t, bus, saver, DefaultConsumerConfig())

	pub := NewPublisher(bus)
	if err := pub.RecordServed(context.Background(), testResponse("req-1")); err != nil {
		t.Fatalf("RecordServed: %v", err)
	}
	waitSaved(t, saver)

	_, saved := saver.snapshot()
	if len(saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(saved))
	}
	got := saved[0]
	if got.RequestID != "req-1" || got.Description != "Full Body(Red Dresses #8)" || got.Probability != 0.8 {
		t.Errorf("record = %+v", got)
	}
	if got.Context.Event != "Date" || len(got.IDs) != 1 || got.IDs[0] != 8 {
		t.Errorf("record context/ids = %+v", got)
	}
}

func TestConsumerRetriesSave(t *testing.T) {
	t.Parallel()

	bus := NewBus(8, watermill.NopLogger{})
	defer bus.Close()
	saver := newFlakySaver(2)
	startConsumer(t, bus, saver, ConsumerConfig{MaxAttempts: 3, RetryBackoff: time.Millisecond})

	if err := NewPublisher(bus).RecordServed(context.Background(), testResponse("req-2")); err != nil {
		t.Fatalf("RecordServed: %v", err)
	}
	waitSaved(t, saver)

	calls, saved := saver.snapshot()
	if calls != 3 || len(saved) != 1 {
		t.Errorf("calls = %d saved = %d, want 3 and 1", calls, len(saved))
	}
}

func TestConsumerDropsUndecodablePayload(t *testing.T) {
	t.Parallel()

	bus := NewBus(8, watermill.NopLogger{})
	defer bus.Close()
	saver := newFlakySaver(0)
	startConsumer(t, bus, saver, DefaultConsumerConfig())

	if err := bus.Publish(TopicServed, message.NewMessage(watermill.NewUUID(), []byte("not json"))); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := NewPublisher(bus).RecordServed(context.Background(), testResponse("req-3")); err != nil {
		t.Fatalf("RecordServed: %v", err)
	}
	waitSaved(t, saver)

	calls, saved := saver.snapshot()
	if calls != 1 || saved[0].RequestID != "req-3" {
		t.Errorf("calls = %d saved = %+v", calls, saved)
	}
}

func TestConsumerPersistsToHistoryStore(t *testing.T) {
	t.Parallel()

	store, err := history.Open(history.Config{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer store.Close()

	bus := NewBus(8, watermill.NopLogger{})
	defer bus.Close()
	startConsumer(t, bus, store, DefaultConsumerConfig())

	if err := NewPublisher(bus).RecordServed(context.Background(), testResponse("req-4")); err != nil {
		t.Fatalf("RecordServed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		records, err := store.List(context.Background(), 10)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(records) == 1 {
			if records[0].ID == "" || records[0].RequestID != "req-4" {
				t.Errorf("record = %+v", records[0])
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("record never reached the store")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestClosedPublisher(t *testing.T) {
	t.Parallel()

	bus := NewBus(0, watermill.NopLogger{})
	defer bus.Close()
	pub := NewPublisher(bus)
	_ = pub.Close()
	if err := pub.RecordServed(context.Background(), testResponse("x")); !errors.Is(err, ErrPublisherClosed) {
		t.Errorf("err = %v, want ErrPublisherClosed", err)
	}
}

func TestLoggerAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewLoggerAdapter(zerolog.New(&buf)).With(watermill.LogFields{"topic": TopicServed})
	adapter.Error("publish failed", errors.New("boom"), watermill.LogFields{"attempt": 2})
	adapter.Info("subscribed", nil)

	out := buf.String()
	for _, want := range []string{`"topic":"recommendation.served"`, `"error":"boom"`, `"attempt":2`, `"message":"subscribed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
