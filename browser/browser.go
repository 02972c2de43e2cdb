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

package browser

import (
	"net/url"
	"strings"
	"time"

	"rivaas.dev/navigation/merge"
)

// Position is a viewport offset in CSS pixels.
type Position struct {
	X float64
	Y float64
}

// NavigationType describes how the current document was reached.
type NavigationType uint8

const (
	NavigationNavigate NavigationType = iota
	NavigationReload
	NavigationBackForward
	NavigationPrerender
)

// ScrollRestoration is the history scroll restoration mode.
type ScrollRestoration string

const (
	ScrollRestorationAuto   ScrollRestoration = "auto"
	ScrollRestorationManual ScrollRestoration = "manual"
)

// Location exposes the active document location.
type Location interface {
	// URL returns the current location. Callers must not mutate it.
	URL() *url.URL

	// Assign performs a full, reloading navigation to u.
	Assign(u *url.URL)
}

// History is the session history store.
type History interface {
	// Push adds a new entry for u carrying state. Hosts may refuse the
	// mutation (quota, security); the error is returned unchanged.
	Push(state merge.Mapping, u *url.URL) error

	// Replace swaps the state of the current entry.
	Replace(state merge.Mapping) error

	// State returns the state of the current entry, nil if it has none.
	State() merge.Mapping

	// NavigationType reports how the document was loaded.
	NavigationType() NavigationType

	// SetScrollRestoration changes the host scroll restoration mode.
	SetScrollRestoration(mode ScrollRestoration)
}

// Viewport reads and sets the window scroll offset.
type Viewport interface {
	ScrollPosition() Position
	ScrollTo(p Position)
}

// Document resolves fragment identifiers.
type Document interface {
	// FragmentOffset returns the page offset of the element identified by
	// fragment (without the leading '#'), and false if there is none.
	FragmentOffset(fragment string) (Position, bool)
}

// Timer is a pending deferred callback.
type Timer interface {
	// Stop cancels the callback, reporting whether it was still pending.
	Stop() bool
}

// Timers schedules deferred callbacks on the host event loop.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Window bundles every contract a full browser host provides.
type Window interface {
	Location
	History
	Viewport
	Document
	Events
	Timers
}

// SameOrigin reports whether a and b share protocol, host name and port.
// An omitted port stands for the scheme's default one.
func SameOrigin(a, b *url.URL) bool {
	if a == nil || b == nil {
		return false
	}
	return strings.EqualFold(a.Scheme, b.Scheme) &&
		strings.EqualFold(a.Hostname(), b.Hostname()) &&
		effectivePort(a) == effectivePort(b)
}

func effectivePort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "ws":
		return "80"
	case "https", "wss":
		return "443"
	}
	return ""
}

// ResolveReference parses ref relative to base, as an anchor href or a
// string passed to the engine would be.
func ResolveReference(base *url.URL, ref string) (*url.URL, error) {
	if base == nil {
		return url.Parse(ref)
	}
	return base.Parse(ref)
}
