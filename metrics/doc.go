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

// Package metrics records navigation metrics with OpenTelemetry.
//
// A [Recorder] implements router.ObservabilityRecorder and counts every
// resolution by kind and outcome, measures how long the synchronous part of
// a transition took, and counts queued lifecycle handlers and superseded
// callbacks. [Recorder.Diagnostics] counts router diagnostic events by kind.
//
// Metrics are exported through Prometheus (default, pull through
// [Recorder.Handler]), OTLP over HTTP, stdout, or a caller-provided
// meter provider:
//
//	recorder := metrics.MustNew(metrics.WithServiceName("storefront"))
//	r := router.MustNew(
//	    router.WithObservability(recorder),
//	    router.WithDiagnostics(recorder.Diagnostics()),
//	)
//	handler, _ := recorder.Handler() // serve on /metrics
//
// # Instruments
//
//   - navigation.transitions (counter): kind, outcome
//   - navigation.transition.duration (histogram, seconds): kind, outcome
//   - navigation.handlers (counter): kind, route
//   - navigation.superseded (counter): callbacks discarded by a newer resolution
//   - navigation.diagnostics (counter): kind
//
// Route attributes use the declared route path, never the concrete URL,
// to keep cardinality bounded.
package metrics
