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

package semconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanAttributesAreNamespaced(t *testing.T) {
	t.Parallel()

	for _, key := range []string{
		NavigationID, NavigationKind, NavigationOutcome, NavigationRoute,
		NavigationPreviousRoute, NavigationHandlers, NavigationSuperseded,
	} {
		assert.True(t, strings.HasPrefix(key, "navigation."), key)
	}
}

func TestOpenTelemetryKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		constant string
		want     string
	}{
		{"ServiceName", ServiceName, "service.name"},
		{"ServiceVersion", ServiceVersion, "service.version"},
		{"URLFull", URLFull, "url.full"},
		{"URLPath", URLPath, "url.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.constant)
		})
	}
}

func TestLogFieldsHaveNoDots(t *testing.T) {
	t.Parallel()

	for _, key := range []string{TransitionID, Route, PreviousRoute, Kind, Outcome, Location, Handlers, Superseded, TraceID, SpanID} {
		assert.NotContains(t, key, ".", key)
	}
}
