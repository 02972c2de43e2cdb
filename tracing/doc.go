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

// Package tracing records one OpenTelemetry span per navigation.
//
// A [Tracer] implements router.ObservabilityRecorder. The span starts when
// the router begins resolving a location and ends once the callback queue
// drained or paused. Its context is attached to the transition args, so
// lifecycle handlers reach it through Args.Context:
//
//	tracer := tracing.MustNew(
//	    tracing.WithServiceName("storefront"),
//	    tracing.WithOTLPHTTP("http://localhost:4318"),
//	)
//	if err := tracer.Start(ctx); err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	r := router.MustNew(router.WithObservability(tracer))
//	r.Route("/products/:id", func() {
//	    r.Enter(func(_, next *route.Args, _ route.ScrollFunc) {
//	        tracing.AddSpanEventFromContext(next.Context(), "product.load")
//	    })
//	})
//
// # Providers
//
//   - Noop (default): spans are created but never exported
//   - Stdout: pretty-printed spans for development
//   - OTLP gRPC and OTLP HTTP: require [Tracer.Start] before use
//   - WithTracerProvider: a caller-managed provider
//
// # Span shape
//
// Spans are named "navigate <route>" once a route matched, "navigate" otherwise.
// Attributes:
//
//   - url.full, url.path
//   - navigation.id, navigation.kind, navigation.outcome
//   - navigation.route, navigation.previous_route
//   - navigation.handlers, navigation.superseded
//
// Not-matched and cross-origin resolutions leave the span status unset and
// add an event; completed and paused transitions end with status Ok.
//
// By default the global tracer provider is not modified. Use
// WithGlobalTracerProvider to register it.
package tracing
