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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
)

func TestScroll_Default(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		history  merge.Mapping
		want     browser.Position
	}{
		{
			name:     "origin",
			location: "/page",
			want:     browser.Position{},
		},
		{
			name:     "fragment",
			location: "/page#details",
			want:     browser.Position{X: 10, Y: 640},
		},
		{
			name:     "unknown fragment",
			location: "/page#missing",
			want:     browser.Position{},
		},
		{
			name:     "history wins over fragment",
			location: "/page#details",
			history:  scrollState(browser.Position{Y: 1200}),
			want:     browser.Position{Y: 1200},
		},
		{
			name:     "history coerced",
			location: "/page",
			history: merge.Mapping{scrollPositionKey: merge.Mapping{
				"x": merge.S("15"),
				"y": merge.S(300),
			}},
			want: browser.Position{X: 15, Y: 300},
		},
		{
			name:     "partial history",
			location: "/page",
			history:  merge.Mapping{scrollPositionKey: merge.Mapping{"y": merge.S(80.5)}},
			want:     browser.Position{Y: 80.5},
		},
		{
			name:     "history without position",
			location: "/page#details",
			history:  merge.Mapping{},
			want:     browser.Position{X: 10, Y: 640},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, w, _ := newTestRouter(t)
			w.SetFragment("details", browser.Position{X: 10, Y: 640})
			w.ScrollTo(browser.Position{X: 1, Y: 1})
			r.Route("/page", nil)

			r.state.pendingHistory = tt.history
			require.True(t, r.Resolve(tt.location, nil))
			assert.Equal(t, tt.want, w.ScrollPosition())
		})
	}
}

func TestScroll_HandlerDelivery(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	w.SetFragment("s2", browser.Position{Y: 900})
	w.ScrollTo(browser.Position{Y: 5})

	var delivered []browser.Position
	r.Route("/doc", func() {
		r.After(func(_, _ *route.Args, scroll route.ScrollFunc) {
			scroll(func(p browser.Position) { delivered = append(delivered, p) })
		})
	})

	r.Resolve("/doc#s2", nil)
	assert.Equal(t, []browser.Position{{Y: 900}}, delivered)
	assert.Equal(t, browser.Position{Y: 5}, w.ScrollPosition(), "default restoration is skipped")
}

func TestScroll_HandlerUsesViewport(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	w.SetFragment("s2", browser.Position{Y: 900})
	calls := 0

	r.Route("/doc", func() {
		r.Enter(func(_, _ *route.Args, scroll route.ScrollFunc) {
			calls++
			scroll(nil)
		})
	})

	r.Resolve("/doc#s2", nil)
	assert.Equal(t, 1, calls)
	assert.Equal(t, browser.Position{Y: 900}, w.ScrollPosition())
}

func TestScroll_DoneReceivesScrollFunc(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	r.Route("/", nil)
	w.ScrollTo(browser.Position{Y: 70})

	var got *browser.Position
	r.Resolve("/", func(_, _ *route.Args, scroll route.ScrollFunc) {
		scroll(func(p browser.Position) { got = &p })
	})

	require.NotNil(t, got)
	assert.Equal(t, browser.Position{}, *got)
	assert.Equal(t, browser.Position{}, w.ScrollPosition(), "finalize ran before done")
}
