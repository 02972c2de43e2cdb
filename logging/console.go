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
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// consoleStyles holds the styles of one console handler. Colors are
// dropped automatically when the output is not a terminal.
type consoleStyles struct {
	time   lipgloss.Style
	levels map[slog.Level]lipgloss.Style
	msg    lipgloss.Style
	key    lipgloss.Style
	source lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	level := func(color string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	return consoleStyles{
		time: r.NewStyle().Foreground(lipgloss.Color("240")),
		levels: map[slog.Level]lipgloss.Style{
			slog.LevelDebug: level("12"),
			slog.LevelInfo:  level("10"),
			slog.LevelWarn:  level("11"),
			slog.LevelError: level("9"),
		},
		msg:    r.NewStyle().Foreground(lipgloss.Color("15")),
		key:    r.NewStyle().Foreground(lipgloss.Color("245")),
		source: r.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

// consoleHandler implements [slog.Handler] for human-readable output:
//
//	15:04:05.000 INFO  transition kind=change from=/a to=/b
type consoleHandler struct {
	opts   slog.HandlerOptions
	styles consoleStyles

	mu  *sync.Mutex
	out io.Writer

	prefix string // rendered attrs from WithAttrs
	groups []string
}

func newConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *consoleHandler {
	h := &consoleHandler{
		styles: newConsoleStyles(w),
		mu:     &sync.Mutex{},
		out:    w,
	}
	if opts != nil {
		h.opts = *opts
	}

	return h
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(h.styles.time.Render(r.Time.Format("15:04:05.000")))
	b.WriteByte(' ')
	b.WriteString(h.levelStyle(r.Level).Render(fmt.Sprintf("%-5s", r.Level.String())))
	b.WriteByte(' ')
	b.WriteString(h.styles.msg.Render(r.Message))
	b.WriteString(h.prefix)

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, h.groups, a)
		return true
	})

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			b.WriteByte(' ')
			b.WriteString(h.styles.source.Render(fmt.Sprintf("(%s:%d)", filepath.Base(frame.File), frame.Line)))
		}
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())

	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.prefix)
	for _, a := range attrs {
		h.appendAttr(&b, h.groups, a)
	}

	out := *h
	out.prefix = b.String()

	return &out
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := *h
	out.groups = append(append([]string(nil), h.groups...), name)

	return &out
}

func (h *consoleHandler) levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return h.styles.levels[slog.LevelError]
	case level >= slog.LevelWarn:
		return h.styles.levels[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return h.styles.levels[slog.LevelInfo]
	default:
		return h.styles.levels[slog.LevelDebug]
	}
}

func (h *consoleHandler) appendAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(groups, a)
		a.Value = a.Value.Resolve()
	}
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		nested := groups
		if a.Key != "" {
			nested = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(b, nested, ga)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	b.WriteByte(' ')
	b.WriteString(h.styles.key.Render(key + "="))
	b.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindFloat64:
		return fmt.Sprintf("%g", v.Float64())
	default:
		return v.String()
	}
}
