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

	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
)

// RouteInfo describes a declared route.
type RouteInfo struct {
	Meta    merge.Mapping
	Pattern string
	Path    string
}

// Routes lists declared routes in registration order. With a prefix, only
// routes whose normalized path starts with it are listed. The result is nil
// when no route qualifies. Meta is a deep copy.
func (r *Router) Routes(prefix ...string) []RouteInfo {
	var filter string
	if len(prefix) > 0 {
		filter = prefix[0]
	}

	var out []RouteInfo
	for _, def := range r.routes {
		if !strings.HasPrefix(def.Path, filter) {
			continue
		}
		out = append(out, RouteInfo{
			Meta:    merge.Clone(def.Meta),
			Pattern: def.Pattern,
			Path:    def.Path,
		})
	}

	return out
}

// ResolvedRoute is a route matched against a concrete path. The embedded
// definition is a copy; changing it does not affect the route table.
type ResolvedRoute struct {
	*route.Definition

	// Params holds the bound parameters; nil values are unmatched optionals.
	Params route.Params

	// Args is set once the route takes part in a transition.
	Args *route.Args
}

// Lookup returns the first declared route that matches path, trying routes
// in registration order. A route whose predicate validator rejects a value
// is skipped and matching continues with the next route.
func (r *Router) Lookup(path string) (*ResolvedRoute, bool) {
	for _, def := range r.routes {
		params, ok := def.Match(path)
		if !ok {
			continue
		}
		return &ResolvedRoute{Definition: def.Clone(), Params: params}, true
	}

	return nil, false
}
