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

// Package route provides route compilation and matching for the navigation
// engine.
//
// This package contains:
//   - Normalize: canonical form of a path template
//   - Compile: path template to anchored, case-insensitive pattern
//   - Definition: a compiled route with validators, handlers and metadata
//   - Handlers: per-event handler lists ordered by priority
//   - Constraint patterns: ready-made validator patterns (int, UUID, date, enum)
//
// # Templates
//
// A template is a path with named parameters:
//
//	/users/:id        requires a value for id
//	/posts/:slug?     matches /posts and /posts/hello
//	/files/:a/\:raw   \: keeps a literal colon
//
// Parameters match one or more non-separator characters unless a validator
// pattern is registered for them. Validators come in two forms, both stored
// in a route's matches mapping:
//
//	matches["id"] = merge.S(`\d+`)                  // embedded in the pattern
//	matches["id"] = merge.S(route.Predicate(isOdd)) // checked after matching
//
// Capturing groups inside a validator pattern are made non-capturing so
// captures stay aligned with parameter names.
package route
