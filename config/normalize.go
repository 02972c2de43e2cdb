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

package config

import "strings"

// normalizeValue copies v into the shape JSON decoding produces:
// map[string]any objects and []any arrays. Keys are lower-cased when
// lower is set.
func normalizeValue(v any, lower bool) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeMap(val, lower)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			if lower {
				key = strings.ToLower(key)
			}
			out[key] = normalizeValue(item, lower)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeMap(item, lower)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item, lower)
		}
		return out
	default:
		return v
	}
}

func normalizeMap(m map[string]any, lower bool) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if lower {
			k = strings.ToLower(k)
		}
		out[k] = normalizeValue(v, lower)
	}

	return out
}
