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

// EventKind names a window event the engine subscribes to.
type EventKind string

const (
	EventPopState EventKind = "popstate"
	EventScroll   EventKind = "scroll"
	EventClick    EventKind = "click"
)

// Event is delivered to listeners registered through [Events].
// Click is set only for [EventClick].
type Event struct {
	Kind  EventKind
	Click *ClickEvent
}

// Anchor describes the nearest enclosing link element of a click target.
type Anchor struct {
	// Href is the raw href attribute; empty means the attribute is absent.
	Href string
	// Target is the raw target attribute.
	Target string
}

// ClickEvent is the subset of a DOM mouse event needed for link interception.
type ClickEvent struct {
	Button           int
	ShiftKey         bool
	CtrlKey          bool
	AltKey           bool
	MetaKey          bool
	DefaultPrevented bool

	// Anchor is nil when no link element encloses the click target.
	Anchor *Anchor
}

// PreventDefault marks the event as handled by the page.
func (e *ClickEvent) PreventDefault() {
	e.DefaultPrevented = true
}

// Modified reports whether any modifier key was held.
func (e *ClickEvent) Modified() bool {
	return e.ShiftKey || e.CtrlKey || e.AltKey || e.MetaKey
}

// Events attaches window event listeners.
type Events interface {
	AddEventListener(kind EventKind, fn func(Event))
}
