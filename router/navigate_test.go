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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_PushesAndResolves(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", nil)
	r.Route("/about", func() { r.Enter(tr.cb("enter")) })

	require.True(t, r.Navigate("/about", tr.cb("done")))

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, "https://example.com/about", w.URL().String())
	assert.Equal(t, map[string]any{}, w.State().Plain())
	assert.Equal(t, []string{"enter:/about", "done:/about"}, tr.calls)
}

func TestNavigate_SameURLDoesNotPush(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	tr := newTrace()
	r.Route("/", func() {
		r.Enter(tr.cb("enter"))
		r.Update(tr.cb("update"))
	})

	require.True(t, r.Navigate("https://example.com/", nil))
	require.True(t, r.Navigate("/", nil))

	assert.Equal(t, 1, w.Len())
	assert.Equal(t, []string{"enter:/", "update:/"}, tr.calls)
}

func TestNavigate_PushFailureAssigns(t *testing.T) {
	t.Parallel()

	r, w, diag := newTestRouter(t)
	tr := newTrace()
	r.Route("/about", func() { r.Enter(tr.cb("enter")) })
	w.PushErr = errors.New("quota exceeded")

	assert.False(t, r.Navigate("/about?x=1", tr.cb("done")))

	require.Len(t, w.Assignments(), 1)
	assert.Equal(t, "https://example.com/about?x=1", w.Assignments()[0].String())
	assert.Empty(t, tr.calls)
	assert.Nil(t, r.Current())
	assert.True(t, diag.has(DiagHistoryFallback))
}

func TestNavigate_CrossOriginIgnored(t *testing.T) {
	t.Parallel()

	r, w, diag := newTestRouter(t)
	r.Route("/", nil)

	assert.False(t, r.Navigate("https://elsewhere.example/", nil))
	assert.Equal(t, 1, w.Len())
	assert.Empty(t, w.Assignments())
	assert.True(t, diag.has(DiagCrossOrigin))
}

func TestNavigate_UnmatchedStillPushes(t *testing.T) {
	t.Parallel()

	r, w, _ := newTestRouter(t)
	assert.False(t, r.Navigate("/unknown", nil))
	assert.Equal(t, 2, w.Len())
	assert.Nil(t, r.Current())
}
