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

import "rivaas.dev/navigation/merge"

// Definition is a compiled route. Path, Pattern and Params never change
// after compilation.
type Definition struct {
	// Path is the normalized template; it identifies the route.
	Path string
	// Pattern is the unanchored pattern source.
	Pattern string
	// Params lists parameter names in capture order.
	Params []string

	Matches  merge.Mapping
	Meta     merge.Mapping
	Handlers Handlers

	compiled *Pattern
}

// NewDefinition normalizes template and compiles it against matches.
// The handlers, matches and meta are stored as given; callers pass
// snapshots.
func NewDefinition(template string, handlers Handlers, matches, meta merge.Mapping) (*Definition, error) {
	path := Normalize(template)

	p, err := Compile(path, matches)
	if err != nil {
		return nil, err
	}

	if handlers == nil {
		handlers = make(Handlers)
	}
	if matches == nil {
		matches = make(merge.Mapping)
	}
	if meta == nil {
		meta = make(merge.Mapping)
	}

	return &Definition{
		Path:     path,
		Pattern:  p.Source,
		Params:   p.Params,
		Matches:  matches,
		Meta:     meta,
		Handlers: handlers,
		compiled: p,
	}, nil
}

// Match tests path against the route. On a structural match every
// parameter is bound in order and checked against its predicate validator,
// if any; the first rejection fails the whole route.
func (d *Definition) Match(path string) (Params, bool) {
	captures, ok := d.compiled.Exec(path)
	if !ok {
		return nil, false
	}

	params := make(Params, len(d.Params))
	for i, value := range captures {
		name := d.Params[i]
		if value == "" {
			params[name] = nil
		} else {
			v := value
			params[name] = &v
		}

		if pred, ok := PredicateFor(d.Matches, name); ok && !pred(value) {
			return nil, false
		}
	}

	return params, true
}

// Clone returns a structural copy of d. Handler lists, matches and meta
// are copied; callbacks and predicates are shared.
func (d *Definition) Clone() *Definition {
	out := *d
	out.Params = append([]string(nil), d.Params...)
	out.Matches = merge.Clone(d.Matches)
	out.Meta = merge.Clone(d.Meta)
	out.Handlers = d.Handlers.Clone()
	return &out
}
