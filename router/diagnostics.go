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

package router

// DiagnosticEvent represents a router diagnostic or anomaly.
// Navigation never surfaces errors to the caller; every silently ignored
// operation is reported here instead.
//
// Diagnostic events are optional - the router functions correctly whether
// they are collected or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// Declaration diagnostics
	DiagRouteRegistered DiagnosticKind = "route_registered"
	DiagRouteReplaced   DiagnosticKind = "route_replaced"
	DiagInvalidPattern  DiagnosticKind = "route_pattern_invalid"
	DiagNestedGroup     DiagnosticKind = "group_nested"
	DiagNestedRoute     DiagnosticKind = "route_nested"
	DiagInvalidEvent    DiagnosticKind = "event_type_invalid"

	// Navigation diagnostics
	DiagCrossOrigin          DiagnosticKind = "location_cross_origin"
	DiagNoMatch              DiagnosticKind = "route_not_matched"
	DiagTransitionSuperseded DiagnosticKind = "transition_superseded"
	DiagHistoryFallback      DiagnosticKind = "history_push_failed"
	DiagScrollPersistFailed  DiagnosticKind = "scroll_persist_failed"
)

// DiagnosticHandler receives diagnostic events from the router.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently dropped.
//
// Example with logging:
//
//	handler := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := router.MustNew(router.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

func (r *Router) emit(kind DiagnosticKind, msg string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: msg, Fields: fields})
}
