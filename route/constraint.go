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

import (
	"regexp"
	"strings"
)

// Validator patterns for common parameter shapes. They are plain strings
// meant for a route's matches mapping.
const (
	PatternInt      = `\d+`
	PatternFloat    = `-?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`
	PatternUUID     = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}`
	PatternSlug     = `[a-z0-9]+(?:-[a-z0-9]+)*`

	// PatternDate is an RFC3339 full-date.
	PatternDate = `\d{4}-\d{2}-\d{2}`

	// PatternDateTime is an RFC3339 date-time.
	PatternDateTime = `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})`
)

// Enum returns a validator pattern accepting exactly one of values.
func Enum(values ...string) string {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, regexp.QuoteMeta(v))
	}
	return "(?:" + strings.Join(escaped, "|") + ")"
}
