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

package tracing

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/navigation/router"
	"rivaas.dev/navigation/telemetry/semconv"
)

// SpanStartHook is called after a transition span started. location is
// the string passed to the router.
type SpanStartHook func(ctx context.Context, span trace.Span, location string)

// SpanFinishHook is called before a transition span ends.
type SpanFinishHook func(span trace.Span, info router.TransitionInfo)

var _ router.ObservabilityRecorder = (*Tracer)(nil)

// OnTransitionStart implements router.ObservabilityRecorder.
// Transitions are not traced when the tracer is not started or not sampled.
func (t *Tracer) OnTransitionStart(ctx context.Context, location string) (context.Context, any) {
	if t.tracer == nil || !t.shouldSample() {
		return ctx, nil
	}

	attrs := []attribute.KeyValue{attribute.String(semconv.URLFull, location)}
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		attrs = append(attrs, attribute.String(semconv.URLPath, u.Path))
	}

	ctx, span := t.tracer.Start(ctx, "navigate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	if t.spanStartHook != nil {
		t.spanStartHook(ctx, span, location)
	}

	return ctx, span
}

// OnTransitionEnd implements router.ObservabilityRecorder.
func (t *Tracer) OnTransitionEnd(_ context.Context, state any, info router.TransitionInfo) {
	span, ok := state.(trace.Span)
	if !ok {
		return
	}

	span.SetAttributes(attribute.String(semconv.NavigationOutcome, string(info.Outcome)))
	if info.Superseded > 0 {
		span.SetAttributes(attribute.Int(semconv.NavigationSuperseded, info.Superseded))
	}

	switch info.Outcome {
	case router.OutcomeCompleted, router.OutcomePaused, router.OutcomeSuperseded:
		span.SetName("navigate " + info.Path)
		span.SetAttributes(
			attribute.String(semconv.NavigationID, info.ID),
			attribute.String(semconv.NavigationKind, string(info.Kind)),
			attribute.String(semconv.NavigationRoute, info.Path),
			attribute.Int(semconv.NavigationHandlers, info.Handlers),
		)
		if info.Previous != "" {
			span.SetAttributes(attribute.String(semconv.NavigationPreviousRoute, info.Previous))
		}
		if info.Outcome == router.OutcomeSuperseded {
			span.AddEvent("superseded by a nested resolution")
		}
		span.SetStatus(codes.Ok, "")
	case router.OutcomeNotMatched:
		span.AddEvent("no route matched")
	case router.OutcomeCrossOrigin:
		span.AddEvent("cross-origin location ignored")
	}

	if t.spanFinishHook != nil {
		t.spanFinishHook(span, info)
	}
	span.End()
}
