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

// Package memory provides an in-memory browser host implementing every
// contract in package browser.
//
// A [Window] keeps a session history stack, a scroll offset, a table of
// fragment offsets, listener lists and a virtual clock. Nothing runs on its
// own: tests drive it explicitly with [Window.Back], [Window.Click],
// [Window.ScrollTo] plus [Window.Dispatch], and [Window.Advance].
//
//	w := memory.MustNew("https://example.com/")
//	r := router.MustNew(router.WithWindow(w))
//	r.Listen()
//	w.Click(&browser.ClickEvent{Anchor: &browser.Anchor{Href: "/users/42"}})
//
// A Window is not safe for concurrent use; it models the single thread of a
// browser page.
package memory
