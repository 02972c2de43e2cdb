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

// Params holds the values captured for a route's parameters, keyed by name.
// Every declared parameter is present; an optional parameter that did not
// match maps to nil.
type Params map[string]*string

// Get returns the value of name, or "" when it is absent or unmatched.
func (p Params) Get(name string) string {
	if v := p[name]; v != nil {
		return *v
	}
	return ""
}

// Lookup returns the value of name and whether it matched.
func (p Params) Lookup(name string) (string, bool) {
	v := p[name]
	if v == nil {
		return "", false
	}
	return *v, true
}

// Has reports whether name is a declared parameter, matched or not.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if v == nil {
			out[k] = nil
			continue
		}
		s := *v
		out[k] = &s
	}
	return out
}

// Plain returns p as a map with nil for unmatched parameters.
func (p Params) Plain() map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		if v == nil {
			out[k] = nil
			continue
		}
		out[k] = *v
	}
	return out
}
