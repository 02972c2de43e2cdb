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

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"rivaas.dev/navigation/router"
	"rivaas.dev/navigation/telemetry/semconv"
)

var _ router.ObservabilityRecorder = (*Recorder)(nil)

// OnTransitionStart implements router.ObservabilityRecorder.
func (r *Recorder) OnTransitionStart(ctx context.Context, _ string) (context.Context, any) {
	if r.shutdown.Load() {
		return ctx, nil
	}

	return ctx, r.now()
}

// OnTransitionEnd implements router.ObservabilityRecorder.
func (r *Recorder) OnTransitionEnd(ctx context.Context, state any, info router.TransitionInfo) {
	start, ok := state.(time.Time)
	if !ok {
		return
	}

	kind := string(info.Kind)
	if kind == "" {
		kind = "none"
	}
	attrs := append([]attribute.KeyValue{
		attribute.String(semconv.Kind, kind),
		attribute.String(semconv.Outcome, string(info.Outcome)),
	}, r.serviceAttrs...)
	set := metric.WithAttributes(attrs...)

	r.transitions.Add(ctx, 1, set)
	r.duration.Record(ctx, r.now().Sub(start).Seconds(), set)

	if info.Handlers > 0 {
		r.handlers.Add(ctx, int64(info.Handlers), metric.WithAttributes(append([]attribute.KeyValue{
			attribute.String(semconv.Kind, kind),
			attribute.String(semconv.Route, info.Path),
		}, r.serviceAttrs...)...))
	}
	if info.Superseded > 0 {
		r.superseded.Add(ctx, int64(info.Superseded), metric.WithAttributes(r.serviceAttrs...))
	}
}

// Diagnostics returns a router.DiagnosticHandler counting events by kind.
func (r *Recorder) Diagnostics() router.DiagnosticHandler {
	return router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
		if r.shutdown.Load() {
			return
		}
		r.diagnostics.Add(context.Background(), 1, metric.WithAttributes(append([]attribute.KeyValue{
			attribute.String(semconv.Kind, string(e.Kind)),
		}, r.serviceAttrs...)...))
	})
}
