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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/browser/memory"
	"rivaas.dev/navigation/route"
)

// trace records callback invocations as "name:path" entries.
type trace struct {
	calls []string
	args  map[string][2]*route.Args
}

func newTrace() *trace {
	return &trace{args: make(map[string][2]*route.Args)}
}

func (tr *trace) cb(name string) route.Callback {
	return func(prev, next *route.Args, _ route.ScrollFunc) {
		tr.calls = append(tr.calls, fmt.Sprintf("%s:%s", name, next.Path))
		tr.args[name] = [2]*route.Args{prev, next}
	}
}

// diagnostics collects diagnostic events.
type diagnostics struct {
	events []DiagnosticEvent
}

func (d *diagnostics) OnDiagnostic(e DiagnosticEvent) {
	d.events = append(d.events, e)
}

func (d *diagnostics) kinds() []DiagnosticKind {
	out := make([]DiagnosticKind, 0, len(d.events))
	for _, e := range d.events {
		out = append(out, e.Kind)
	}
	return out
}

func (d *diagnostics) has(kind DiagnosticKind) bool {
	for _, e := range d.events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func newTestRouter(t *testing.T, opts ...Option) (*Router, *memory.Window, *diagnostics) {
	t.Helper()

	w := memory.MustNew("https://example.com/")
	diag := &diagnostics{}
	all := append([]Option{WithWindow(w), WithDiagnostics(diag)}, opts...)
	r, err := New(all...)
	require.NoError(t, err)

	return r, w, diag
}

func noop(_, _ *route.Args, _ route.ScrollFunc) {}

var origin = browser.Position{}
