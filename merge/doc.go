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

// Package merge implements the recursive structural merge used for
// configuration inheritance and per-transition data snapshots.
//
// Data is modeled as a closed set of variants:
//
//   - [Scalar] wraps any opaque value (strings, numbers, nil, functions, pointers)
//   - [Sequence] is an ordered list of values
//   - [Mapping] is a string-keyed map of values
//
// [Merge] walks each source left to right. Containers are merged recursively
// into a container of the same kind in the target (a fresh one replaces a slot
// of a different kind); scalars overwrite the target slot by reference.
// Opaque values such as validator functions are never deep-copied.
//
// # Usage
//
//	meta := merge.Mapping{}
//	merge.Merge(meta, merge.FromMap(map[string]any{
//	    "title": "Users",
//	    "nav":   map[string]any{"section": "admin"},
//	}))
//
//	snapshot := merge.Clone(meta) // independent containers, shared scalars
//
// Merge performs no cycle detection; callers must not merge self-referential
// structures.
package merge
