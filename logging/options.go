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
	"io"
	"log/slog"
)

// WithHandlerType sets the output format.
func WithHandlerType(t HandlerType) Option {
	return func(l *Logger) {
		l.handlerType = t
	}
}

// WithJSONHandler selects JSON output. This is the default.
func WithJSONHandler() Option {
	return WithHandlerType(JSONHandler)
}

// WithTextHandler selects key=value text output.
func WithTextHandler() Option {
	return WithHandlerType(TextHandler)
}

// WithConsoleHandler selects styled, human-readable output.
func WithConsoleHandler() Option {
	return WithHandlerType(ConsoleHandler)
}

// WithOutput sets the destination writer. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.output = w
	}
}

// WithLevel sets the minimum level. Default: info.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level.Set(level)
	}
}

// WithDebugLevel is WithLevel(LevelDebug).
func WithDebugLevel() Option {
	return WithLevel(LevelDebug)
}

// WithServiceName adds a "service" attribute to every entry.
func WithServiceName(name string) Option {
	return func(l *Logger) {
		l.serviceName = name
	}
}

// WithServiceVersion adds a "version" attribute to every entry.
func WithServiceVersion(version string) Option {
	return func(l *Logger) {
		l.serviceVersion = version
	}
}

// WithSource includes the caller location in every entry.
func WithSource(enabled bool) Option {
	return func(l *Logger) {
		l.addSource = enabled
	}
}

// WithRedactedKeys replaces the set of attribute keys whose values are masked.
func WithRedactedKeys(keys ...string) Option {
	return func(l *Logger) {
		l.redacted = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			l.redacted[k] = struct{}{}
		}
	}
}

// WithReplaceAttr sets a function applied to every attribute after redaction.
func WithReplaceAttr(fn func(groups []string, a slog.Attr) slog.Attr) Option {
	return func(l *Logger) {
		l.replaceAttr = fn
	}
}

// WithCustomLogger uses an existing slog logger. Handler, output, level and
// source options are ignored.
func WithCustomLogger(logger *slog.Logger) Option {
	return func(l *Logger) {
		l.custom = logger
		l.useCustom = true
	}
}

// WithGlobalLogger registers the logger with slog.SetDefault.
func WithGlobalLogger() Option {
	return func(l *Logger) {
		l.registerGlobal = true
	}
}
