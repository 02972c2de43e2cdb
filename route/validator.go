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

// Predicate validates a captured parameter value after the pattern matched.
// Unmatched optional parameters are passed as "".
type Predicate func(value string) bool

// PatternFor returns the string validator registered for name in matches.
func PatternFor(matches merge.Mapping, name string) (string, bool) {
	v, ok := matches.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// PredicateFor returns the predicate validator registered for name in
// matches. Plain func(string) bool values are accepted as well.
func PredicateFor(matches merge.Mapping, name string) (Predicate, bool) {
	v, ok := matches.Get(name)
	if !ok {
		return nil, false
	}
	switch fn := v.(type) {
	case Predicate:
		return fn, fn != nil
	case func(string) bool:
		return fn, fn != nil
	default:
		return nil, false
	}
}
