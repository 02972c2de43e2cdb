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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
)

func TestListen_ResolvesInitialLocation(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", func() { r.Enter(tr.cb("enter")) })

	r.Listen()
	r.Listen()

	assert.Equal(t, []string{"enter:/"}, tr.calls)
	assert.Equal(t, browser.ScrollRestorationManual, w.ScrollRestoration())
}

func TestListen_KeepsCurrentRoute(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", func() { r.Enter(tr.cb("enter")) })
	r.Route("/other", func() { r.Enter(tr.cb("enter")) })

	r.Resolve("/other", nil)
	r.Listen()

	assert.Equal(t, []string{"enter:/other"}, tr.calls)
}

func TestListen_BackForwardSeedsHistory(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", func() { r.Enter(tr.cb("enter")) })

	require.NoError(t, w.Replace(scrollState(browser.Position{Y: 420})))
	w.SetNavigationType(browser.NavigationBackForward)

	r.Listen()

	next := tr.args["enter"][1]
	require.NotNil(t, next)
	assert.Equal(t, map[string]any{
		"scrollPosition": map[string]any{"x": float64(0), "y": float64(420)},
	}, next.History.Plain())
	assert.Equal(t, browser.Position{Y: 420}, w.ScrollPosition())
}

func TestListen_BackForwardWithoutState(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", func() { r.Enter(tr.cb("enter")) })
	w.SetNavigationType(browser.NavigationBackForward)

	r.Listen()

	next := tr.args["enter"][1]
	require.NotNil(t, next.History)
	assert.Empty(t, next.History)
}

func TestListen_PopState(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", func() { r.Enter(tr.cb("enter")) })
	r.Route("/a", func() {
		r.Enter(tr.cb("enter"))
		r.Leave(tr.cb("leave"))
	})
	r.Listen()

	require.True(t, r.Navigate("/a", nil))
	w.UserScroll(browser.Position{Y: 500})
	w.Advance(DefaultScrollDebounce)

	require.True(t, r.Navigate("/", nil))
	assert.Equal(t, origin, w.ScrollPosition())

	require.NoError(t, w.Back())
	assert.Equal(t, "/a", r.Current().Path)
	assert.Equal(t, browser.Position{Y: 500}, w.ScrollPosition())

	require.NoError(t, w.Back())
	assert.Equal(t, "/", r.Current().Path)
	assert.Empty(t, r.Current().Args.History, "initial entry has no state")
	assert.NotNil(t, r.Current().Args.History)

	assert.Equal(t, []string{"enter:/", "enter:/a", "leave:/", "enter:/", "enter:/a", "leave:/", "enter:/"}, tr.calls)
}

func TestListen_ScrollDebounce(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	r.Route("/", nil)
	r.Listen()
	require.NoError(t, w.Replace(nil))

	w.UserScroll(browser.Position{Y: 300})
	w.Advance(50 * time.Millisecond)
	w.UserScroll(browser.Position{X: 2, Y: 400})
	w.Advance(99 * time.Millisecond)
	assert.Nil(t, w.State())
	assert.Equal(t, 1, w.Pending())

	w.Advance(time.Millisecond)
	assert.Equal(t, map[string]any{
		"scrollPosition": map[string]any{"x": float64(2), "y": float64(400)},
	}, w.State().Plain())
	assert.Zero(t, w.Pending())
}

func TestListen_ScrollMergesExistingState(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t, WithScrollDebounce(time.Second))
	r.Route("/", nil)
	r.Listen()

	require.NoError(t, w.Replace(merge.Mapping{
		"page":            merge.S(3),
		scrollPositionKey: merge.Mapping{"x": merge.S(9), "y": merge.S(9)},
	}))

	w.UserScroll(browser.Position{Y: 10})
	w.Advance(time.Second)

	state := w.State().Plain()
	assert.Equal(t, map[string]any{"x": float64(0), "y": float64(10)}, state["scrollPosition"])
	assert.Equal(t, 3, state["page"])
}

func TestListen_ScrollReplaceErrorSwallowed(t *testing.T) {
	t.Parallel()

	r, w, diag := newTestRouter(t)
	r.Route("/", nil)
	r.Listen()
	w.ReplaceErr = errors.New("denied")

	assert.NotPanics(t, func() {
		w.UserScroll(browser.Position{Y: 10})
		w.Advance(DefaultScrollDebounce)
	})
	assert.True(t, diag.has(DiagScrollPersistFailed))
}

func TestListen_Click(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		event     browser.ClickEvent
		prevented bool
		path      string
	}{
		{
			name:      "internal link",
			event:     browser.ClickEvent{Anchor: &browser.Anchor{Href: "/docs"}},
			prevented: true,
			path:      "/docs",
		},
		{
			name:      "relative link",
			event:     browser.ClickEvent{Anchor: &browser.Anchor{Href: "docs#intro"}},
			prevented: true,
			path:      "/docs",
		},
		{
			name:      "self target",
			event:     browser.ClickEvent{Anchor: &browser.Anchor{Href: "/docs", Target: "_self"}},
			prevented: true,
			path:      "/docs",
		},
		{
			name:      "already prevented",
			event:     browser.ClickEvent{DefaultPrevented: true, Anchor: &browser.Anchor{Href: "/docs"}},
			prevented: true,
			path:      "/",
		},
		{
			name:  "middle button",
			event: browser.ClickEvent{Button: 1, Anchor: &browser.Anchor{Href: "/docs"}},
			path:  "/",
		},
		{
			name:  "ctrl click",
			event: browser.ClickEvent{CtrlKey: true, Anchor: &browser.Anchor{Href: "/docs"}},
			path:  "/",
		},
		{
			name:  "meta click",
			event: browser.ClickEvent{MetaKey: true, Anchor: &browser.Anchor{Href: "/docs"}},
			path:  "/",
		},
		{
			name:  "not a link",
			event: browser.ClickEvent{},
			path:  "/",
		},
		{
			name:  "no href",
			event: browser.ClickEvent{Anchor: &browser.Anchor{}},
			path:  "/",
		},
		{
			name:  "blank target",
			event: browser.ClickEvent{Anchor: &browser.Anchor{Href: "/docs", Target: "_BLANK"}},
			path:  "/",
		},
		{
			name:  "external link",
			event: browser.ClickEvent{Anchor: &browser.Anchor{Href: "https://other.example/docs"}},
			path:  "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, w, _ := newTestRouter(t)
			r.Route("/", nil)
			r.Route("/docs", nil)
			r.Listen()

			ev := tt.event
			assert.Equal(t, tt.prevented, w.Click(&ev))
			assert.Equal(t, tt.path, r.Current().Path)
			assert.Equal(t, tt.path, w.URL().Path)
		})
	}
}

func TestListen_ClickUnknownRouteStillIntercepted(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	r.Route("/", nil)
	r.Listen()

	assert.True(t, w.Click(&browser.ClickEvent{Anchor: &browser.Anchor{Href: "/unknown"}}))
	assert.Equal(t, "/unknown", w.URL().Path)
	assert.Equal(t, "/", r.Current().Path)
}

func TestListen_WithoutEventsOrTimers(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	r.events = nil
	r.timers = nil
	r.Route("/", func() { r.Enter(noop) })

	r.Listen()
	require.NotNil(t, r.Current())

	w.ScrollTo(browser.Position{Y: 33})
	r.onScroll(browser.Event{Kind: browser.EventScroll})
	assert.Equal(t, map[string]any{"x": float64(0), "y": float64(33)}, w.State().Plain()["scrollPosition"])
}
