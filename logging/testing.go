// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// LogEntry represents a parsed JSON log entry.
type LogEntry struct {
	Level   string
	Message string
	Attrs   map[string]any
}

// ParseJSONLogEntries parses JSON lines from buf without consuming it.
func ParseJSONLogEntries(buf *bytes.Buffer) ([]LogEntry, error) {
	var entries []LogEntry

	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var raw map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
			return nil, fmt.Errorf("parse log line: %w", err)
		}

		e := LogEntry{Attrs: make(map[string]any, len(raw))}
		for k, v := range raw {
			switch k {
			case slog.TimeKey:
			case slog.LevelKey:
				e.Level, _ = v.(string)
			case slog.MessageKey:
				e.Message, _ = v.(string)
			default:
				e.Attrs[k] = v
			}
		}
		entries = append(entries, e)
	}

	return entries, scanner.Err()
}

// TestHelper captures JSON log output of a [Logger] for assertions.
type TestHelper struct {
	Logger *Logger
	Buffer *bytes.Buffer
}

// NewTestHelper creates a debug-level JSON logger writing to memory.
// opts are applied after the defaults.
func NewTestHelper(t *testing.T, opts ...Option) *TestHelper {
	t.Helper()

	buf := &bytes.Buffer{}
	all := append([]Option{WithJSONHandler(), WithOutput(buf), WithDebugLevel()}, opts...)

	logger, err := New(all...)
	require.NoError(t, err)

	return &TestHelper{Logger: logger, Buffer: buf}
}

// Logs returns all parsed entries.
func (th *TestHelper) Logs() ([]LogEntry, error) {
	return ParseJSONLogEntries(th.Buffer)
}

// ContainsLog reports whether any entry has message msg.
func (th *TestHelper) ContainsLog(msg string) bool {
	entries, err := th.Logs()
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.Message == msg {
			return true
		}
	}

	return false
}

// ContainsAttr reports whether any entry has attribute key equal to value.
// Numbers compare by value, since JSON decodes them as float64.
func (th *TestHelper) ContainsAttr(key string, value any) bool {
	entries, err := th.Logs()
	if err != nil {
		return false
	}
	for _, e := range entries {
		if v, ok := e.Attrs[key]; ok && attrEqual(v, value) {
			return true
		}
	}

	return false
}

// CountLevel returns the number of entries at level, e.g. "INFO".
func (th *TestHelper) CountLevel(level string) int {
	entries, err := th.Logs()
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if e.Level == level {
			n++
		}
	}

	return n
}

// Reset clears the captured output.
func (th *TestHelper) Reset() {
	th.Buffer.Reset()
}

// AssertLog fails t unless an entry with level, msg and every attribute
// in attrs exists.
func (th *TestHelper) AssertLog(t *testing.T, level, msg string, attrs map[string]any) {
	t.Helper()

	entries, err := th.Logs()
	require.NoError(t, err, "failed to parse logs")

	for _, e := range entries {
		if e.Level != level || e.Message != msg {
			continue
		}
		matched := true
		for k, want := range attrs {
			if got, ok := e.Attrs[k]; !ok || !attrEqual(got, want) {
				matched = false
				break
			}
		}
		if matched {
			return
		}
	}

	require.Fail(t, "log entry not found", "level=%s msg=%s attrs=%v", level, msg, attrs)
}

func attrEqual(got, want any) bool {
	if f, ok := got.(float64); ok {
		switch w := want.(type) {
		case int:
			return f == float64(w)
		case int64:
			return f == float64(w)
		case float64:
			return f == w
		}
	}

	return fmt.Sprint(got) == fmt.Sprint(want)
}

// HandlerSpy implements [slog.Handler] and records every record it
// handles, with the attributes added through WithAttrs.
//
// Example:
//
//	spy := &logging.HandlerSpy{}
//	r := router.MustNew(router.WithLogger(slog.New(spy)))
//	r.Route("/", nil)
//	// spy.Messages() == []string{"route registered"}
type HandlerSpy struct {
	mu      sync.Mutex
	records []slog.Record
	attrs   []slog.Attr
	parent  *HandlerSpy
}

func (hs *HandlerSpy) root() *HandlerSpy {
	if hs.parent != nil {
		return hs.parent.root()
	}
	return hs
}

// Enabled implements [slog.Handler].
func (hs *HandlerSpy) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements [slog.Handler].
func (hs *HandlerSpy) Handle(_ context.Context, r slog.Record) error {
	r = r.Clone()
	r.AddAttrs(hs.attrs...)

	root := hs.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.records = append(root.records, r)

	return nil
}

// WithAttrs implements [slog.Handler].
func (hs *HandlerSpy) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &HandlerSpy{
		attrs:  append(append([]slog.Attr(nil), hs.attrs...), attrs...),
		parent: hs.root(),
	}
}

// WithGroup implements [slog.Handler]. Groups are not tracked.
func (hs *HandlerSpy) WithGroup(string) slog.Handler {
	return hs
}

// Records returns all captured records.
func (hs *HandlerSpy) Records() []slog.Record {
	root := hs.root()
	root.mu.Lock()
	defer root.mu.Unlock()

	return append([]slog.Record(nil), root.records...)
}

// Messages returns the message of every captured record, in order.
func (hs *HandlerSpy) Messages() []string {
	records := hs.Records()
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Message
	}

	return out
}

// Attrs returns the attributes of record i keyed by name.
func (hs *HandlerSpy) Attrs(i int) map[string]slog.Value {
	records := hs.Records()
	out := make(map[string]slog.Value)
	records[i].Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value
		return true
	})

	return out
}

// Reset clears all captured records.
func (hs *HandlerSpy) Reset() {
	root := hs.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.records = nil
}
