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

// Package browser defines the host-environment contracts consumed by the
// navigation engine.
//
// The engine never touches a real browser. Everything it needs from one is
// expressed as a small interface:
//
//   - [Location]: the active document location and hard navigation
//   - [History]: session history entries and their opaque state
//   - [Viewport]: reading and setting the scroll offset
//   - [Document]: resolving a URL fragment to a page offset
//   - [Events]: popstate, scroll and click subscriptions
//   - [Timers]: deferred callbacks used for debouncing
//
// A WebAssembly build binds these to syscall/js; tests and tools use the
// in-memory implementation in package memory.
package browser
