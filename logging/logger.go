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
	"os"
	"sync/atomic"
)

// HandlerType represents the type of logging handler.
type HandlerType string

const (
	// JSONHandler outputs structured JSON logs.
	JSONHandler HandlerType = "json"
	// TextHandler outputs key=value text logs.
	TextHandler HandlerType = "text"
	// ConsoleHandler outputs human-readable styled logs.
	ConsoleHandler HandlerType = "console"
)

const redactedValue = "***REDACTED***"

// Logger owns a configured [slog.Logger].
//
// The level can be changed at runtime with SetLevel; everything else is
// fixed by New. All methods are safe for concurrent use.
type Logger struct {
	handlerType HandlerType
	output      io.Writer
	level       *slog.LevelVar
	addSource   bool

	serviceName    string
	serviceVersion string

	redacted    map[string]struct{}
	replaceAttr func(groups []string, a slog.Attr) slog.Attr

	custom    *slog.Logger
	useCustom bool

	registerGlobal bool

	slogger  *slog.Logger
	shutdown atomic.Bool
}

// Option is a functional option for configuring the logger.
type Option func(*Logger)

func defaultLogger() *Logger {
	l := &Logger{
		handlerType: JSONHandler,
		output:      os.Stdout,
		level:       new(slog.LevelVar),
	}
	WithRedactedKeys("token", "password", "secret", "authorization")(l)

	return l
}

// New creates a Logger with the given options.
//
// New does not replace the slog default logger unless WithGlobalLogger
// is given.
func New(opts ...Option) (*Logger, error) {
	l := defaultLogger()
	for _, opt := range opts {
		opt(l)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l.slogger = l.build()
	if l.registerGlobal {
		slog.SetDefault(l.slogger)
	}

	return l, nil
}

// MustNew creates a new Logger or panics on error.
func MustNew(opts ...Option) *Logger {
	l, err := New(opts...)
	if err != nil {
		panic("logging initialization failed: " + err.Error())
	}

	return l
}

// Validate checks if the configuration is valid.
func (l *Logger) Validate() error {
	if l.useCustom {
		if l.custom == nil {
			return ErrNilLogger
		}
		return nil
	}
	if l.output == nil {
		return ErrNilOutput
	}
	switch l.handlerType {
	case JSONHandler, TextHandler, ConsoleHandler:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHandler, l.handlerType)
	}

	return nil
}

func (l *Logger) build() *slog.Logger {
	if l.useCustom {
		return l.custom
	}

	opts := &slog.HandlerOptions{
		Level:       l.level,
		AddSource:   l.addSource,
		ReplaceAttr: l.replace,
	}

	var handler slog.Handler
	switch l.handlerType {
	case TextHandler:
		handler = slog.NewTextHandler(l.output, opts)
	case ConsoleHandler:
		handler = newConsoleHandler(l.output, opts)
	default:
		handler = slog.NewJSONHandler(l.output, opts)
	}

	logger := slog.New(handler)

	var attrs []any
	if l.serviceName != "" {
		attrs = append(attrs, "service", l.serviceName)
	}
	if l.serviceVersion != "" {
		attrs = append(attrs, "version", l.serviceVersion)
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	return logger
}

func (l *Logger) replace(groups []string, a slog.Attr) slog.Attr {
	if _, ok := l.redacted[a.Key]; ok {
		a = slog.String(a.Key, redactedValue)
	}
	if l.replaceAttr != nil {
		return l.replaceAttr(groups, a)
	}

	return a
}

// Logger returns the underlying [slog.Logger]. After Shutdown it returns a
// logger that discards everything.
func (l *Logger) Logger() *slog.Logger {
	if l.shutdown.Load() {
		return discard
	}

	return l.slogger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// With returns a [slog.Logger] with additional attributes.
func (l *Logger) With(args ...any) *slog.Logger {
	return l.Logger().With(args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.Logger().Debug(msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.Logger().Info(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.Logger().Warn(msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.Logger().Error(msg, args...)
}

// SetLevel changes the minimum level of every logger derived from l.
func (l *Logger) SetLevel(level Level) error {
	if l.useCustom {
		return ErrCannotChangeLevel
	}
	l.level.Set(level)

	return nil
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return l.level.Level()
}

// ServiceName returns the service name.
func (l *Logger) ServiceName() string {
	return l.serviceName
}

// ServiceVersion returns the service version.
func (l *Logger) ServiceVersion() string {
	return l.serviceVersion
}

// Shutdown stops logging. Entries written afterwards are dropped.
func (l *Logger) Shutdown(_ context.Context) error {
	l.shutdown.Store(true)

	if f, ok := l.output.(interface{ Flush() error }); ok && !l.useCustom {
		return f.Flush()
	}

	return nil
}
