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

package semconv

// Service metadata, set once per process.
const (
	ServiceName    = "service.name"
	ServiceVersion = "service.version"
)

// URL attributes of the location being resolved.
const (
	// URLFull is the location string handed to the router.
	URLFull = "url.full"
	// URLPath is the path of URLFull.
	URLPath = "url.path"
)

// Span attributes describing a transition.
const (
	NavigationID            = "navigation.id"
	NavigationKind          = "navigation.kind"
	NavigationOutcome       = "navigation.outcome"
	NavigationRoute         = "navigation.route" // route template, e.g. "/posts/:slug"
	NavigationPreviousRoute = "navigation.previous_route"
	NavigationHandlers      = "navigation.handlers"
	NavigationSuperseded    = "navigation.superseded"
)

// Log fields and metric labels. Metric labels stay low-cardinality: Route
// is always a template, never a concrete path.
const (
	TransitionID  = "transition_id"
	Route         = "route"
	PreviousRoute = "from"
	Kind          = "kind"
	Outcome       = "outcome"
	Location      = "location"
	Handlers      = "handlers"
	Superseded    = "superseded"
)

// Trace correlation fields for logs.
const (
	TraceID = "trace_id"
	SpanID  = "span_id"
)
