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

import (
	"strings"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
)

// Listen attaches the router to its window.
//
// It subscribes to popstate (resolve the new location with its history
// state), click (intercept same-origin links) and scroll (persist the
// position into the history state once scrolling settles). When the page
// was reached through back/forward, the current history state is kept for
// the first resolution. History scroll restoration is switched to manual,
// and the current location is resolved if nothing is current yet.
//
// Calling Listen more than once has no further effect.
func (r *Router) Listen() {
	if r.listening {
		return
	}
	r.listening = true

	if r.events != nil {
		r.events.AddEventListener(browser.EventPopState, r.onPopState)
		r.events.AddEventListener(browser.EventScroll, r.onScroll)
		r.events.AddEventListener(browser.EventClick, r.onClick)
	}

	if r.history != nil {
		if r.history.NavigationType() == browser.NavigationBackForward {
			r.state.pendingHistory = r.historyState()
		}
		r.history.SetScrollRestoration(browser.ScrollRestorationManual)
	}

	if r.state.current == nil {
		r.Resolve(r.location.URL().String(), nil)
	}
}

func (r *Router) historyState() merge.Mapping {
	if r.history == nil {
		return merge.Mapping{}
	}
	if s := r.history.State(); s != nil {
		return s
	}
	return merge.Mapping{}
}

func (r *Router) onPopState(browser.Event) {
	r.state.pendingHistory = r.historyState()
	r.Resolve(r.location.URL().String(), nil)
}

func (r *Router) onScroll(browser.Event) {
	if r.scrollTimer != nil {
		r.scrollTimer.Stop()
	}
	if r.timers == nil {
		r.persistScroll()
		return
	}
	r.scrollTimer = r.timers.AfterFunc(r.scrollDebounce, r.persistScroll)
}

func (r *Router) persistScroll() {
	r.scrollTimer = nil
	if r.history == nil || r.viewport == nil {
		return
	}

	state := merge.Merge(merge.Mapping{}, r.history.State(), scrollState(r.viewport.ScrollPosition()))
	if err := r.history.Replace(state); err != nil {
		r.emit(DiagScrollPersistFailed, "scroll position not saved", map[string]any{
			"error": err.Error(),
		})
	}
}

func (r *Router) onClick(e browser.Event) {
	ev := e.Click
	if ev == nil || ev.DefaultPrevented || ev.Button != 0 || ev.Modified() {
		return
	}

	a := ev.Anchor
	if a == nil || a.Href == "" || strings.Contains(strings.ToLower(a.Target), "_blank") {
		return
	}

	u, ok := r.internalURL(a.Href)
	if !ok {
		return
	}

	ev.PreventDefault()
	r.Navigate(u.String(), nil)
}
