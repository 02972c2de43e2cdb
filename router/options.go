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
	"fmt"
	"log/slog"
	"time"

	"rivaas.dev/navigation/browser"
)

// Option configures a Router.
type Option func(*Router)

// WithWindow sets every browser collaborator from a single window.
// Individual collaborator options applied afterwards take precedence.
//
// Example:
//
//	w := memory.MustNew("https://example.com/")
//	r := router.MustNew(router.WithWindow(w))
func WithWindow(w browser.Window) Option {
	return func(r *Router) {
		if w == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: window", ErrNilCollaborator))
			return
		}
		r.location = w
		r.history = w
		r.viewport = w
		r.document = w
		r.events = w
		r.timers = w
	}
}

// WithLocation sets the source of the current URL and the hard-navigation fallback.
func WithLocation(l browser.Location) Option {
	return func(r *Router) {
		if l == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: location", ErrNilCollaborator))
			return
		}
		r.location = l
	}
}

// WithHistory sets the session history used by Navigate and Listen.
func WithHistory(h browser.History) Option {
	return func(r *Router) {
		if h == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: history", ErrNilCollaborator))
			return
		}
		r.history = h
	}
}

// WithViewport sets the scroll target for default scroll restoration.
func WithViewport(v browser.Viewport) Option {
	return func(r *Router) {
		if v == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: viewport", ErrNilCollaborator))
			return
		}
		r.viewport = v
	}
}

// WithDocument sets the fragment resolver used by scroll restoration.
func WithDocument(d browser.Document) Option {
	return func(r *Router) {
		if d == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: document", ErrNilCollaborator))
			return
		}
		r.document = d
	}
}

// WithEvents sets the event source subscribed to by Listen.
func WithEvents(e browser.Events) Option {
	return func(r *Router) {
		if e == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: events", ErrNilCollaborator))
			return
		}
		r.events = e
	}
}

// WithTimers sets the timer source for the scroll debounce.
func WithTimers(t browser.Timers) Option {
	return func(r *Router) {
		if t == nil {
			r.optionErrs = append(r.optionErrs, fmt.Errorf("%w: timers", ErrNilCollaborator))
			return
		}
		r.timers = t
	}
}

// WithLogger sets the structured logger. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithDiagnostics sets a diagnostic handler for the router.
//
// Diagnostic events report declarations and navigations that were ignored,
// such as nested groups, invalid patterns or cross-origin locations.
//
// Example:
//
//	handler := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
//	    slog.Debug(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := router.MustNew(router.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithObservability appends recorders that observe every resolution.
// Recorders are started in order and ended in reverse order.
func WithObservability(recorders ...ObservabilityRecorder) Option {
	return func(r *Router) {
		for _, rec := range recorders {
			if rec != nil {
				r.recorders = append(r.recorders, rec)
			}
		}
	}
}

// WithScrollDebounce sets how long scrolling must settle before the
// position is written into the history state. Default: 100ms.
func WithScrollDebounce(d time.Duration) Option {
	return func(r *Router) {
		r.scrollDebounce = d
	}
}

// WithTransitionIDs replaces the generator of transition IDs.
// The default generator returns random UUIDs.
func WithTransitionIDs(fn func() string) Option {
	return func(r *Router) {
		r.newID = fn
	}
}
