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

import "context"

// TransitionKind describes which lifecycle branch a resolution took.
type TransitionKind string

const (
	// TransitionInitial runs before, enter and after on the first resolved route.
	TransitionInitial TransitionKind = "initial"
	// TransitionUpdate runs update handlers when the route path is unchanged.
	TransitionUpdate TransitionKind = "update"
	// TransitionChange runs leave on the previous route, then before, enter and after.
	TransitionChange TransitionKind = "change"
)

// Outcome is the result of a single resolution attempt.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomePaused    Outcome = "paused"
	// OutcomeSuperseded marks a transition whose callbacks started another
	// resolution, which discarded the rest of its queue.
	OutcomeSuperseded  Outcome = "superseded"
	OutcomeNotMatched  Outcome = "not_matched"
	OutcomeCrossOrigin Outcome = "cross_origin"
)

// TransitionInfo summarizes a resolution for observability recorders.
// ID, Kind, Path and Pattern are empty when no transition was started.
type TransitionInfo struct {
	ID         string
	Location   string
	Path       string
	Pattern    string
	Previous   string
	Kind       TransitionKind
	Outcome    Outcome
	Handlers   int // lifecycle callbacks queued, excluding finalize and done
	Superseded int // tasks discarded from the previous transition
}

// ObservabilityRecorder provides lifecycle hooks around each resolution.
// Implementations typically combine metrics collection and tracing.
//
// Lifecycle:
//  1. Router calls OnTransitionStart(ctx, location) before matching
//     and receives an enriched context and an opaque state token.
//  2. The enriched context is attached to the transition args, so handlers
//     can read it through Args.Context.
//  3. After the queue drains (or pauses), the router calls
//     OnTransitionEnd(ctx, state, info) unless state is nil.
//
// Recorders run on the goroutine that drives the router.
type ObservabilityRecorder interface {
	OnTransitionStart(ctx context.Context, location string) (context.Context, any)
	OnTransitionEnd(ctx context.Context, state any, info TransitionInfo)
}

type observation struct {
	ctx    context.Context
	states []any
}

func (r *Router) startObservation(ctx context.Context, location string) observation {
	obs := observation{ctx: ctx}
	if len(r.recorders) == 0 {
		return obs
	}
	obs.states = make([]any, len(r.recorders))
	for i, rec := range r.recorders {
		obs.ctx, obs.states[i] = rec.OnTransitionStart(obs.ctx, location)
	}
	return obs
}

func (r *Router) endObservation(obs observation, info TransitionInfo) {
	for i := len(r.recorders) - 1; i >= 0; i-- {
		if obs.states[i] == nil {
			continue
		}
		r.recorders[i].OnTransitionEnd(obs.ctx, obs.states[i], info)
	}
}
