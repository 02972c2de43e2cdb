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

package merge

// Merge merges every source into target, left to right, and returns target.
// A nil target is replaced by a new mapping. Nil sources are skipped.
func Merge(target Mapping, sources ...Mapping) Mapping {
	if target == nil {
		target = make(Mapping)
	}
	for _, src := range sources {
		for key, v := range src {
			target[key] = mergeValue(target[key], v)
		}
	}
	return target
}

// Clone returns a structural copy of m. Containers are copied, scalars are
// shared by reference.
func Clone(m Mapping) Mapping {
	return Merge(make(Mapping, len(m)), m)
}

// CloneValue returns a structural copy of v.
func CloneValue(v Value) Value {
	return mergeValue(nil, v)
}

// mergeValue merges src into dst and returns the value to store in the slot.
func mergeValue(dst, src Value) Value {
	switch s := src.(type) {
	case Mapping:
		d, ok := dst.(Mapping)
		if !ok || d == nil {
			d = make(Mapping, len(s))
		}
		for key, v := range s {
			d[key] = mergeValue(d[key], v)
		}
		return d
	case Sequence:
		d, ok := dst.(Sequence)
		if !ok {
			d = make(Sequence, 0, len(s))
		}
		for i, v := range s {
			if i < len(d) {
				d[i] = mergeValue(d[i], v)
				continue
			}
			d = append(d, mergeValue(nil, v))
		}
		return d
	case Scalar:
		return s
	default:
		// nil Value: an absent slot in a hand-built mapping
		return Scalar{}
	}
}
