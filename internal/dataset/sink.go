// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wardrobe/internal/recommend"
)

// Sample is one labeled (context, outfit) record. Absent slots encode as null.
type Sample struct {
	Context recommend.Context `json:"context"`
	Outfit  recommend.Outfit  `json:"outfit"`
	Label   string            `json:"label"`
}

// Pair is one preference record.
type Pair struct {
	Prompt   string `json:"prompt"`
	Chosen   string `json:"chosen"`
	Rejected string `json:"rejected"`
}

// Sink receives generated records in order.
type Sink[T any] interface {
	Write(record T) error
}

// SliceSink collects records in memory.
type SliceSink[T any] struct {
	Records []T
}

// Write appends record.
func (s *SliceSink[T]) Write(record T) error {
	s.Records = append(s.Records, record)
	return nil
}

var errWriterClosed = errors.New("writer closed")

// JSONArrayWriter streams records as one indented JSON array.
// Close must be called to terminate the array.
type JSONArrayWriter[T any] struct {
	w      *bufio.Writer
	count  int
	closed bool
}

// NewJSONArrayWriter returns a writer over w.
func NewJSONArrayWriter[T any](w io.Writer) *JSONArrayWriter[T] {
	return &JSONArrayWriter[T]{w: bufio.NewWriter(w)}
}

// Write appends one element.
func (a *JSONArrayWriter[T]) Write(record T) error {
	if a.closed {
		return errWriterClosed
	}
	data, err := json.MarshalIndent(record, "  ", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	sep := ",\n  "
	if a.count == 0 {
		sep = "[\n  "
	}
	if _, err := a.w.WriteString(sep); err != nil {
		return err
	}
	if _, err := a.w.Write(data); err != nil {
		return err
	}
	a.count++
	return nil
}

// Count returns the number of records written.
func (a *JSONArrayWriter[T]) Count() int {
	return a.count
}

// Close terminates the array and flushes. An empty run writes "[]".
func (a *JSONArrayWriter[T]) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	tail := "\n]\n"
	if a.count == 0 {
		tail = "[]\n"
	}
	if _, err := a.w.WriteString(tail); err != nil {
		return err
	}
	return a.w.Flush()
}

// JSONLWriter streams one JSON object per line.
type JSONLWriter[T any] struct {
	w     *bufio.Writer
	enc   *json.Encoder
	count int
}

// NewJSONLWriter returns a writer over w. Non-ASCII text is written unescaped.
func NewJSONLWriter[T any](w io.Writer) *JSONLWriter[T] {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONLWriter[T]{w: bw, enc: enc}
}

// Write encodes one line.
func (l *JSONLWriter[T]) Write(record T) error {
	if err := l.enc.Encode(record); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	l.count++
	return nil
}

// Count returns the number of records written.
func (l *JSONLWriter[T]) Count() int {
	return l.count
}

// Close flushes buffered lines.
func (l *JSONLWriter[T]) Close() error {
	return l.w.Flush()
}
