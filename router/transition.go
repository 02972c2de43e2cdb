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
	"context"
	"net/url"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
)

// Resolve matches location against the route table and runs the
// transition to the matched route. It is ResolveContext with
// context.Background.
func (r *Router) Resolve(location string, done route.Callback) bool {
	return r.ResolveContext(context.Background(), location, done)
}

// ResolveContext matches location against the route table and runs the
// transition to the matched route.
//
// Callbacks still queued from an earlier transition are discarded and the
// queue is unpaused first, even when location is then ignored. location is
// resolved against the current URL; cross-origin and unmatched locations
// start no transition.
//
// Lifecycle callbacks are queued as follows:
//   - no current route: before, enter and after of the new route;
//   - same route path as the current one: update of the new route;
//   - otherwise: leave of the current route, then before, enter and after
//     of the new one.
//
// A final task restores the scroll position unless a callback already did,
// then done runs, if not nil. The new route is committed as current before
// the queue drains, so callbacks observe it through Current.
//
// The result reports whether a transition was started. It does not report
// whether its callbacks have all run; a callback may have paused the queue.
func (r *Router) ResolveContext(ctx context.Context, location string, done route.Callback) bool {
	r.state.scrollHandled = false
	r.state.generation++
	superseded := r.queue.CancelPending()
	if superseded > 0 {
		r.emit(DiagTransitionSuperseded, "pending callbacks discarded", map[string]any{
			"location":  location,
			"discarded": superseded,
		})
		r.logger.Debug("transition superseded", "location", location, "discarded", superseded)
	}

	obs := r.startObservation(ctx, location)
	info := TransitionInfo{Location: location, Superseded: superseded}

	u, ok := r.internalURL(location)
	if !ok {
		r.emit(DiagCrossOrigin, "location is not same-origin; ignored", map[string]any{
			"location": location,
		})
		info.Outcome = OutcomeCrossOrigin
		r.endObservation(obs, info)
		return false
	}

	r.transition(obs, u, done, &info)
	r.endObservation(obs, info)

	switch info.Outcome {
	case OutcomeCompleted, OutcomePaused, OutcomeSuperseded:
		return true
	}
	return false
}

func (r *Router) resolveURL(ctx context.Context, u *url.URL, done route.Callback) bool {
	return r.ResolveContext(ctx, u.String(), done)
}

func (r *Router) transition(obs observation, u *url.URL, done route.Callback, info *TransitionInfo) {
	path := pathOf(u)
	next, ok := r.Lookup(path)
	if !ok {
		r.emit(DiagNoMatch, "no route matches path", map[string]any{
			"path": path,
		})
		r.logger.Debug("no route matched", "path", path)
		info.Outcome = OutcomeNotMatched
		return
	}

	prev := r.state.current
	next.Args = (&route.Args{
		ID:      r.newID(),
		Meta:    merge.Clone(next.Meta),
		Params:  next.Params.Clone(),
		History: r.state.pendingHistory,
		Pattern: next.Pattern,
		Path:    next.Path,
		URL:     u,
	}).WithContext(obs.ctx)
	r.state.pendingHistory = nil

	var prevArgs *route.Args
	if prev != nil {
		prevArgs = prev.Args
	}
	nextArgs := next.Args
	scroll := func(deliver func(browser.Position)) {
		r.restoreScroll(nextArgs, deliver)
	}
	queue := func(list []route.Handler) {
		for _, h := range list {
			cb := h.Callback
			if cb == nil {
				continue
			}
			r.queue.Enqueue(func() { cb(prevArgs, nextArgs, scroll) })
			info.Handlers++
		}
	}

	switch {
	case prev == nil:
		info.Kind = TransitionInitial
	case prev.Path == next.Path:
		info.Kind = TransitionUpdate
		info.Previous = prev.Path
		queue(next.Handlers.List(route.EventUpdate))
	default:
		info.Kind = TransitionChange
		info.Previous = prev.Path
		queue(prev.Handlers.List(route.EventLeave))
	}
	if info.Kind != TransitionUpdate {
		queue(next.Handlers.List(route.EventBefore))
		queue(next.Handlers.List(route.EventEnter))
		queue(next.Handlers.List(route.EventAfter))
	}

	r.queue.Enqueue(func() {
		if !r.state.scrollHandled {
			r.restoreScroll(nextArgs, nil)
		}
	})
	if done != nil {
		r.queue.Enqueue(func() { done(prevArgs, nextArgs, scroll) })
	}

	r.state.current = next
	info.ID = nextArgs.ID
	info.Path = next.Path
	info.Pattern = next.Pattern

	r.logger.Debug("transition",
		"id", info.ID,
		"kind", string(info.Kind),
		"from", info.Previous,
		"to", next.Path,
		"url", u.String(),
	)

	gen := r.state.generation
	r.queue.Drain()

	switch {
	case r.state.generation != gen:
		info.Outcome = OutcomeSuperseded
	case r.queue.Paused() && r.queue.Len() > 0:
		info.Outcome = OutcomePaused
	default:
		info.Outcome = OutcomeCompleted
	}
}

// internalURL resolves location against the current URL and reports
// whether the result is same-origin.
func (r *Router) internalURL(location string) (*url.URL, bool) {
	base := r.location.URL()
	u, err := browser.ResolveReference(base, location)
	if err != nil {
		return nil, false
	}
	if !browser.SameOrigin(base, u) {
		return nil, false
	}
	return u, true
}

// pathOf returns the path the matcher sees. Percent-encoding is kept.
func pathOf(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" {
		return "/"
	}
	return p
}
