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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/browser/memory"
	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
	"rivaas.dev/navigation/scheduler"
)

const (
	// DefaultScrollDebounce is the settle time before a scroll position is persisted.
	DefaultScrollDebounce = 100 * time.Millisecond

	// DefaultWindowURL is the location of the in-memory window used when
	// no Location is configured.
	DefaultWindowURL = "http://localhost/"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Router is a client-side navigation engine.
//
// A Router owns its route table, its declaration scopes, the routing state
// and the callback queue. It is not safe for concurrent use; it is meant
// to be driven from a single event loop, the way a browser page is.
type Router struct {
	// Route table in registration order, indexed by normalized path.
	routes []*route.Definition
	index  map[string]int

	// Instance-level defaults inherited by groups and routes.
	root scope

	// Active declaration scopes; nil outside Group and Route.
	group *scope
	decl  *scope

	state routingState
	queue *scheduler.Queue

	location browser.Location
	history  browser.History
	viewport browser.Viewport
	document browser.Document
	events   browser.Events
	timers   browser.Timers

	logger         *slog.Logger
	diagnostics    DiagnosticHandler
	recorders      []ObservabilityRecorder
	scrollDebounce time.Duration
	newID          func() string

	listening   bool
	scrollTimer browser.Timer

	optionErrs []error
}

// routingState is the mutable navigation state of a Router.
type routingState struct {
	// Set once scroll restoration ran for the current transition.
	scrollHandled bool
	// Route committed by the most recent successful resolution.
	current *ResolvedRoute
	// History entry attached to the next resolution only. Nil means none.
	pendingHistory merge.Mapping
	// Incremented by every resolution, including ignored ones.
	generation uint64
}

// New creates a Router with the given options.
//
// Without WithWindow or WithLocation, the router runs against an in-memory
// window at DefaultWindowURL. Collaborators left unset are skipped: without a
// History, Navigate never pushes; without a Viewport, default scroll
// restoration is a no-op.
//
// Example:
//
//	r, err := router.New(router.WithWindow(memory.MustNew("https://example.com/")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Route("/users/:id", func() {
//	    r.Enter(func(prev, next *route.Args, scroll route.ScrollFunc) {
//	        fmt.Println("user", next.Params.Get("id"))
//	    })
//	})
func New(opts ...Option) (*Router, error) {
	r := &Router{
		index: make(map[string]int),
		root: scope{
			handlers: make(route.Handlers),
			matches:  merge.Mapping{},
			meta:     merge.Mapping{},
		},
		queue:          scheduler.New(),
		logger:         noopLogger,
		scrollDebounce: DefaultScrollDebounce,
		newID:          uuid.NewString,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("router configuration validation failed: %w", err)
	}

	if r.location == nil {
		w, err := memory.New(DefaultWindowURL)
		if err != nil {
			return nil, err
		}
		r.location = w
		if r.history == nil {
			r.history = w
		}
		if r.viewport == nil {
			r.viewport = w
		}
		if r.document == nil {
			r.document = w
		}
		if r.events == nil {
			r.events = w
		}
		if r.timers == nil {
			r.timers = w
		}
	}

	return r, nil
}

// MustNew creates a Router and panics if the configuration is invalid.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("router.MustNew: %v", err))
	}

	return r
}

func (r *Router) validate() error {
	errs := append([]error(nil), r.optionErrs...)
	if r.logger == nil {
		errs = append(errs, ErrNilLogger)
	}
	if r.scrollDebounce <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrScrollDebounceInvalid, r.scrollDebounce))
	}
	if r.newID == nil {
		errs = append(errs, ErrNilIDGenerator)
	}

	return errors.Join(errs...)
}

// Current returns the route committed by the most recent resolution,
// or nil before the first one.
func (r *Router) Current() *ResolvedRoute {
	return r.state.current
}

// Pause stops the callback queue after the task currently running.
// Queued callbacks wait until Resume. A new resolution discards them.
func (r *Router) Pause() {
	r.queue.Pause()
}

// Resume continues the callback queue where Pause stopped it.
func (r *Router) Resume() {
	r.queue.Resume()
}

// Paused reports whether the callback queue is paused.
func (r *Router) Paused() bool {
	return r.queue.Paused()
}
