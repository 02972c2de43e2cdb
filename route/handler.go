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

package route

import (
	"context"
	"net/url"
	"sort"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
)

// EventType identifies a lifecycle event.
type EventType string

const (
	// EventUpdate fires when the resolved route is the current one.
	EventUpdate EventType = "update"
	// EventBefore, EventEnter and EventAfter fire, in that order, when a
	// route becomes current.
	EventBefore EventType = "before"
	EventEnter  EventType = "enter"
	EventAfter  EventType = "after"
	// EventLeave fires on the current route when another one replaces it.
	EventLeave EventType = "leave"
)

// DefaultPriority is the priority used when none is given.
const DefaultPriority = 10

// EventTypes lists every lifecycle event.
var EventTypes = []EventType{EventUpdate, EventBefore, EventEnter, EventAfter, EventLeave}

// Valid reports whether e is a known lifecycle event.
func (e EventType) Valid() bool {
	switch e {
	case EventUpdate, EventBefore, EventEnter, EventAfter, EventLeave:
		return true
	default:
		return false
	}
}

// Args describes one side of a transition. Handlers receive the previous
// route's Args (nil on the first transition) and the next route's Args.
// Args are snapshots; changing them does not affect registered routes.
type Args struct {
	// ID identifies the transition that produced these Args.
	ID      string
	Meta    merge.Mapping
	Params  Params
	History merge.Mapping
	Pattern string
	Path    string
	URL     *url.URL

	ctx context.Context
}

// Context returns the context of the transition. It is never nil.
func (a *Args) Context() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of a carrying ctx.
func (a *Args) WithContext(ctx context.Context) *Args {
	if ctx == nil {
		panic("route: nil context")
	}
	out := *a
	out.ctx = ctx
	return &out
}

// ScrollFunc restores the scroll position for a transition. With a nil
// deliver function the viewport is scrolled; otherwise the computed
// position is handed to deliver instead.
type ScrollFunc func(deliver func(browser.Position))

// Callback is a lifecycle handler.
type Callback func(prev, next *Args, scroll ScrollFunc)

// Handler is a callback registered at a priority.
type Handler struct {
	Callback Callback
	Priority int
}

// Handlers maps lifecycle events to handler lists sorted by ascending
// priority, with at most one handler per priority.
type Handlers map[EventType][]Handler

// Set registers cb for event at priority. An existing handler at the same
// priority is replaced; a nil cb removes it instead.
func (h Handlers) Set(event EventType, cb Callback, priority int) {
	list := h[event]

	for i := range list {
		if list[i].Priority != priority {
			continue
		}
		if cb == nil {
			h[event] = append(list[:i:i], list[i+1:]...)
		} else {
			list[i].Callback = cb
		}
		return
	}

	if cb == nil {
		return
	}

	list = append(list, Handler{Callback: cb, Priority: priority})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority < list[j].Priority
	})
	h[event] = list
}

// List returns the handlers for event in execution order.
func (h Handlers) List(event EventType) []Handler {
	return h[event]
}

// Clone returns a copy of h with independent lists.
func (h Handlers) Clone() Handlers {
	out := make(Handlers, len(h))
	for event, list := range h {
		out[event] = append([]Handler(nil), list...)
	}
	return out
}
