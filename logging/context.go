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
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/navigation/route"
	"rivaas.dev/navigation/telemetry/semconv"
)

// Field names for transition and trace correlation.
const (
	FieldTransitionID = semconv.TransitionID
	FieldRoute        = semconv.Route
	FieldTraceID      = semconv.TraceID
	FieldSpanID       = semconv.SpanID
)

// ForTransition returns a logger annotated with the transition ID and route
// path of args, plus the trace and span IDs when the transition context
// carries a recording OpenTelemetry span.
//
// Example:
//
//	r.Enter(func(prev, next *route.Args, scroll route.ScrollFunc) {
//	    log := logging.ForTransition(logger.Logger(), next)
//	    log.Info("rendering", "params", next.Params.Plain())
//	})
func ForTransition(logger *slog.Logger, args *route.Args) *slog.Logger {
	if args == nil {
		return logger
	}

	attrs := []any{FieldTransitionID, args.ID, FieldRoute, args.Path}
	if sc := trace.SpanContextFromContext(args.Context()); sc.IsValid() {
		attrs = append(attrs,
			FieldTraceID, sc.TraceID().String(),
			FieldSpanID, sc.SpanID().String(),
		)
	}

	return logger.With(attrs...)
}
