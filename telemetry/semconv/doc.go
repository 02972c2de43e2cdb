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

// Package semconv defines the attribute keys shared by navigation logs,
// metrics and traces, so the three signals can be joined on the same
// names.
//
// Keys with a dot follow OpenTelemetry semantic conventions where one
// exists (service.name, url.full) and use the navigation.* namespace
// otherwise. Log field and metric label keys are short snake_case names.
//
// # Usage
//
//	logger.Info("rendered",
//	    semconv.TransitionID, next.ID,
//	    semconv.Route, next.Path,
//	)
//
//	span.SetAttributes(attribute.String(semconv.NavigationRoute, info.Path))
package semconv
