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

package memory

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"time"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
)

// ErrNoEntry is returned by history traversal past either end of the stack.
var ErrNoEntry = errors.New("no history entry")

type entry struct {
	url   *url.URL
	state merge.Mapping
}

// Window is an in-memory [browser.Window].
type Window struct {
	entries []entry
	index   int

	navType     browser.NavigationType
	restoration browser.ScrollRestoration

	scroll    browser.Position
	fragments map[string]browser.Position

	listeners map[browser.EventKind][]func(browser.Event)

	now    time.Duration
	seq    int
	timers []*timer

	assigned []*url.URL

	// PushErr, when set, is returned by Push without mutating history.
	PushErr error
	// ReplaceErr, when set, is returned by Replace without mutating history.
	ReplaceErr error
}

var _ browser.Window = (*Window)(nil)

// New creates a window whose document is loaded at rawURL.
// rawURL must be absolute.
func New(rawURL string) (*Window, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid document url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("document url %q must be absolute", rawURL)
	}
	return &Window{
		entries:     []entry{{url: u}},
		restoration: browser.ScrollRestorationAuto,
		fragments:   make(map[string]browser.Position),
		listeners:   make(map[browser.EventKind][]func(browser.Event)),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(rawURL string) *Window {
	w, err := New(rawURL)
	if err != nil {
		panic("memory window: " + err.Error())
	}
	return w
}

// URL implements [browser.Location].
func (w *Window) URL() *url.URL {
	return w.entries[w.index].url
}

// Assign implements [browser.Location]. The hard navigation is recorded and
// replaces the whole session, as a reload would.
func (w *Window) Assign(u *url.URL) {
	w.assigned = append(w.assigned, u)
	w.entries = []entry{{url: u}}
	w.index = 0
	w.navType = browser.NavigationNavigate
}

// Assignments returns every URL passed to Assign, oldest first.
func (w *Window) Assignments() []*url.URL {
	return w.assigned
}

// Push implements [browser.History]. Entries after the current one are
// discarded.
func (w *Window) Push(state merge.Mapping, u *url.URL) error {
	if w.PushErr != nil {
		return w.PushErr
	}
	w.entries = append(w.entries[:w.index+1], entry{url: u, state: state})
	w.index++
	return nil
}

// Replace implements [browser.History].
func (w *Window) Replace(state merge.Mapping) error {
	if w.ReplaceErr != nil {
		return w.ReplaceErr
	}
	w.entries[w.index].state = state
	return nil
}

// State implements [browser.History].
func (w *Window) State() merge.Mapping {
	return w.entries[w.index].state
}

// NavigationType implements [browser.History].
func (w *Window) NavigationType() browser.NavigationType {
	return w.navType
}

// SetNavigationType sets the value reported by NavigationType, e.g. to
// simulate a page restored from the back/forward cache.
func (w *Window) SetNavigationType(t browser.NavigationType) {
	w.navType = t
}

// SetScrollRestoration implements [browser.History].
func (w *Window) SetScrollRestoration(mode browser.ScrollRestoration) {
	w.restoration = mode
}

// ScrollRestoration returns the current scroll restoration mode.
func (w *Window) ScrollRestoration() browser.ScrollRestoration {
	return w.restoration
}

// Len returns the number of history entries.
func (w *Window) Len() int {
	return len(w.entries)
}

// Go moves delta entries through history and dispatches popstate, as
// history.go does. Moving past either end returns [ErrNoEntry].
func (w *Window) Go(delta int) error {
	next := w.index + delta
	if next < 0 || next >= len(w.entries) {
		return ErrNoEntry
	}
	w.index = next
	w.Dispatch(browser.Event{Kind: browser.EventPopState})
	return nil
}

// Back is Go(-1).
func (w *Window) Back() error {
	return w.Go(-1)
}

// Forward is Go(1).
func (w *Window) Forward() error {
	return w.Go(1)
}

// ScrollPosition implements [browser.Viewport].
func (w *Window) ScrollPosition() browser.Position {
	return w.scroll
}

// ScrollTo implements [browser.Viewport]. It does not dispatch a scroll
// event; use UserScroll to simulate the user scrolling.
func (w *Window) ScrollTo(p browser.Position) {
	w.scroll = p
}

// UserScroll moves the viewport and dispatches a scroll event.
func (w *Window) UserScroll(p browser.Position) {
	w.scroll = p
	w.Dispatch(browser.Event{Kind: browser.EventScroll})
}

// SetFragment registers an element offset for FragmentOffset.
func (w *Window) SetFragment(id string, p browser.Position) {
	w.fragments[id] = p
}

// FragmentOffset implements [browser.Document].
func (w *Window) FragmentOffset(fragment string) (browser.Position, bool) {
	p, ok := w.fragments[fragment]
	return p, ok
}

// AddEventListener implements [browser.Events].
func (w *Window) AddEventListener(kind browser.EventKind, fn func(browser.Event)) {
	w.listeners[kind] = append(w.listeners[kind], fn)
}

// Dispatch delivers e to every listener of its kind, in registration order.
func (w *Window) Dispatch(e browser.Event) {
	for _, fn := range w.listeners[e.Kind] {
		fn(e)
	}
}

// Click dispatches a click event and reports whether a listener prevented
// the default action.
func (w *Window) Click(ev *browser.ClickEvent) bool {
	w.Dispatch(browser.Event{Kind: browser.EventClick, Click: ev})
	return ev.DefaultPrevented
}

type timer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// AfterFunc implements [browser.Timers] on the virtual clock.
func (w *Window) AfterFunc(d time.Duration, fn func()) browser.Timer {
	w.seq++
	t := &timer{at: w.now + d, seq: w.seq, fn: fn}
	w.timers = append(w.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (w *Window) Pending() int {
	n := 0
	for _, t := range w.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the virtual clock forward by d and runs every timer that
// becomes due, in due order.
func (w *Window) Advance(d time.Duration) {
	deadline := w.now + d
	for {
		t := w.nextDue(deadline)
		if t == nil {
			break
		}
		w.now = t.at
		t.fired = true
		t.fn()
	}
	w.now = deadline
	w.compact()
}

func (w *Window) nextDue(deadline time.Duration) *timer {
	due := make([]*timer, 0, len(w.timers))
	for _, t := range w.timers {
		if !t.stopped && !t.fired && t.at <= deadline {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (w *Window) compact() {
	live := w.timers[:0]
	for _, t := range w.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	w.timers = live
}
