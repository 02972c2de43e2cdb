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
	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
)

// DataKey selects which inherited mapping AssignData writes to.
type DataKey string

const (
	// DataMeta is free-form route metadata, copied into every transition.
	DataMeta DataKey = "meta"
	// DataMatches maps parameter names to validators: a pattern string
	// or a predicate.
	DataMatches DataKey = "matches"
)

// scope is a handler/matches/meta triple. The router holds one at
// instance level and one per active Group or Route declaration.
type scope struct {
	handlers route.Handlers
	matches  merge.Mapping
	meta     merge.Mapping
}

func (s *scope) snapshot() *scope {
	return &scope{
		handlers: s.handlers.Clone(),
		matches:  merge.Clone(s.matches),
		meta:     merge.Clone(s.meta),
	}
}

func (s *scope) data(key DataKey) *merge.Mapping {
	if key == DataMatches {
		return &s.matches
	}
	return &s.meta
}

// target returns the scope declarations currently write to: the route
// being declared, else the active group, else the instance.
func (r *Router) target() *scope {
	if r.decl != nil {
		return r.decl
	}
	if r.group != nil {
		return r.group
	}
	return &r.root
}

// Group runs fn with a group scope initialized from the instance-level
// handlers, matches and meta. Declarations inside fn write to the group;
// routes declared inside fn inherit from it. The group scope is discarded
// when fn returns.
//
// Groups do not nest: calling Group while a group is active does nothing.
//
// Example:
//
//	r.Group(func() {
//	    r.Meta(map[string]any{"section": "admin"})
//	    r.Route("/admin/users", nil)
//	    r.Route("/admin/settings", nil)
//	})
func (r *Router) Group(fn func()) {
	if r.group != nil {
		r.emit(DiagNestedGroup, "group declared inside a group; ignored", nil)
		r.logger.Debug("nested group ignored")
		return
	}

	r.group = r.root.snapshot()
	defer func() { r.group = nil }()

	if fn != nil {
		fn()
	}
}

// Route declares the route at template. fn, if not nil, runs with a route
// scope initialized from the active group, or the instance when no group
// is active; handlers and data declared inside fn apply to this route only.
//
// The template is normalized, then compiled against the route's matches.
// Declaring the same normalized path again replaces the earlier route,
// which keeps its position in the table. Route inside Route does nothing.
// A template whose validators do not compile is skipped.
func (r *Router) Route(template string, fn func()) {
	if r.decl != nil {
		r.emit(DiagNestedRoute, "route declared inside a route; ignored", map[string]any{
			"template": template,
		})
		r.logger.Debug("nested route ignored", "template", template)
		return
	}

	parent := &r.root
	if r.group != nil {
		parent = r.group
	}

	r.decl = parent.snapshot()
	decl := r.decl
	func() {
		defer func() { r.decl = nil }()
		if fn != nil {
			fn()
		}
	}()

	def, err := route.NewDefinition(template, decl.handlers, decl.matches, decl.meta)
	if err != nil {
		r.emit(DiagInvalidPattern, "route pattern failed to compile; route skipped", map[string]any{
			"template": template,
			"error":    err.Error(),
		})
		r.logger.Warn("route skipped", "template", template, "error", err)
		return
	}

	r.store(def)
}

func (r *Router) store(def *route.Definition) {
	if i, ok := r.index[def.Path]; ok {
		r.routes[i] = def
		r.emit(DiagRouteReplaced, "route redeclared", map[string]any{
			"path":    def.Path,
			"pattern": def.Pattern,
		})
		r.logger.Debug("route replaced", "path", def.Path, "pattern", def.Pattern)
		return
	}

	r.index[def.Path] = len(r.routes)
	r.routes = append(r.routes, def)
	r.emit(DiagRouteRegistered, "route registered", map[string]any{
		"path":    def.Path,
		"pattern": def.Pattern,
		"params":  def.Params,
	})
	r.logger.Debug("route registered", "path", def.Path, "pattern", def.Pattern)
}

// On registers cb for event at priority in the current scope. A callback
// already registered at the same priority is replaced; a nil cb removes it.
// Unknown event types are ignored.
func (r *Router) On(event route.EventType, cb route.Callback, priority int) {
	if !event.Valid() {
		r.emit(DiagInvalidEvent, "unknown event type; handler ignored", map[string]any{
			"event": string(event),
		})
		return
	}
	r.target().handlers.Set(event, cb, priority)
}

func priorityOf(priority []int) int {
	if len(priority) > 0 {
		return priority[0]
	}
	return route.DefaultPriority
}

// Update registers cb to run when a resolution keeps the same route path.
// The optional priority defaults to route.DefaultPriority.
func (r *Router) Update(cb route.Callback, priority ...int) {
	r.On(route.EventUpdate, cb, priorityOf(priority))
}

// Before registers cb to run first when a route is entered.
func (r *Router) Before(cb route.Callback, priority ...int) {
	r.On(route.EventBefore, cb, priorityOf(priority))
}

// Enter registers cb to run after the before handlers of an entered route.
func (r *Router) Enter(cb route.Callback, priority ...int) {
	r.On(route.EventEnter, cb, priorityOf(priority))
}

// After registers cb to run last when a route is entered.
func (r *Router) After(cb route.Callback, priority ...int) {
	r.On(route.EventAfter, cb, priorityOf(priority))
}

// Leave registers cb to run when the router moves away from a route.
func (r *Router) Leave(cb route.Callback, priority ...int) {
	r.On(route.EventLeave, cb, priorityOf(priority))
}

// AssignData deep-merges data into the current scope's meta or matches.
// With mergeData false the mapping is emptied first.
func (r *Router) AssignData(key DataKey, data map[string]any, mergeData bool) {
	slot := r.target().data(key)
	if !mergeData || *slot == nil {
		*slot = merge.Mapping{}
	}
	merge.Merge(*slot, merge.FromMap(data))
}

// DataOption configures Meta and Match.
type DataOption func(*dataOptions)

type dataOptions struct {
	replace bool
}

// Replace discards the scope's existing data instead of merging into it.
func Replace() DataOption {
	return func(o *dataOptions) {
		o.replace = true
	}
}

func applyDataOptions(opts []DataOption) dataOptions {
	var o dataOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Meta merges data into the current scope's metadata.
//
// Example:
//
//	r.Route("/blog/:slug", func() {
//	    r.Meta(map[string]any{"title": "Blog", "layout": map[string]any{"sidebar": true}})
//	})
func (r *Router) Meta(data map[string]any, opts ...DataOption) {
	o := applyDataOptions(opts)
	r.AssignData(DataMeta, data, !o.replace)
}

// Match merges parameter validators into the current scope. A validator is
// a regular expression string embedded into the route pattern, or a
// route.Predicate (or plain func(string) bool) run on the captured value.
//
// Example:
//
//	r.Match(map[string]any{
//	    "id":   route.PatternInt,
//	    "lang": route.Predicate(func(v string) bool { return v == "" || len(v) == 2 }),
//	})
func (r *Router) Match(validators map[string]any, opts ...DataOption) {
	o := applyDataOptions(opts)
	r.AssignData(DataMatches, validators, !o.replace)
}
