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

// Package router provides a client-side navigation engine for Go.
//
// The router maps URL paths of a single-page application to declared
// routes and runs ordered lifecycle callbacks when the active route
// changes. It talks to its host only through the interfaces of package
// browser, so it runs the same against a real window binding or the
// in-memory window of package browser/memory.
//
// # Key Features
//
//   - Route templates with named, optional and validated parameters
//   - Group and route scopes that inherit handlers, validators and metadata
//   - before/enter/after/leave/update callbacks ordered by priority
//   - A pausable callback queue: a callback may Pause and later Resume
//   - Link interception, popstate handling and scroll restoration
//   - Diagnostics for every ignored declaration or navigation
//   - Observability hooks for tracing and metrics
//
// # Constructor Pattern
//
// New validates its options and returns an error for invalid ones, such as
// a nil collaborator or a non-positive scroll debounce. MustNew panics
// instead. All options use the "With" prefix.
//
// # Quick Start
//
//	w := memory.MustNew("https://example.com/")
//	r := router.MustNew(router.WithWindow(w))
//
//	r.Match(map[string]any{"id": route.PatternInt})
//	r.Route("/users/:id", func() {
//	    r.Enter(func(prev, next *route.Args, scroll route.ScrollFunc) {
//	        fmt.Println("user", next.Params.Get("id"))
//	    })
//	})
//
//	r.Listen()
//	r.Navigate("/users/42", nil)
//
// # Lifecycle
//
// Every resolution first discards callbacks still queued from the previous
// one. When the matched route has the same path as the current route, its
// update handlers run. Otherwise the current route's leave handlers run,
// then before, enter and after of the new route. Within each event,
// handlers run in ascending priority. A final step restores the scroll
// position unless a handler already called its scroll function, then the
// done callback given to Resolve or Navigate runs.
//
// # Concurrency
//
// A Router is not safe for concurrent use. Drive it from one goroutine,
// the way a browser event loop would.
package router
