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

	"rivaas.dev/navigation/browser/memory"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)

	assert.Equal(t, DefaultWindowURL, r.location.URL().String())
	assert.NotNil(t, r.history)
	assert.NotNil(t, r.viewport)
	assert.Equal(t, DefaultScrollDebounce, r.scrollDebounce)
	assert.Nil(t, r.Current())
	assert.Nil(t, r.Routes())
	assert.False(t, r.Paused())
}

func TestNew_PartialCollaborators(t *testing.T) {
	t.Parallel()

	w := memory.MustNew("https://example.com/")
	other := memory.MustNew("http://localhost/")
	r, err := New(WithWindow(other), WithLocation(w))
	require.NoError(t, err)

	assert.Same(t, w, r.location)
	assert.Same(t, other, r.history)
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"nil window", WithWindow(nil), ErrNilCollaborator},
		{"nil location", WithLocation(nil), ErrNilCollaborator},
		{"nil history", WithHistory(nil), ErrNilCollaborator},
		{"nil viewport", WithViewport(nil), ErrNilCollaborator},
		{"nil document", WithDocument(nil), ErrNilCollaborator},
		{"nil events", WithEvents(nil), ErrNilCollaborator},
		{"nil timers", WithTimers(nil), ErrNilCollaborator},
		{"nil logger", WithLogger(nil), ErrNilLogger},
		{"zero debounce", WithScrollDebounce(0), ErrScrollDebounceInvalid},
		{"negative debounce", WithScrollDebounce(-time.Second), ErrScrollDebounceInvalid},
		{"nil id generator", WithTransitionIDs(nil), ErrNilIDGenerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tt.opt)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNew_JoinsErrors(t *testing.T) {
	t.Parallel()

	_, err := New(WithLogger(nil), WithScrollDebounce(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilLogger)
	assert.ErrorIs(t, err, ErrScrollDebounceInvalid)
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t,
		"router.MustNew: router configuration validation failed: logger is nil",
		func() { MustNew(WithLogger(nil)) },
	)
	assert.NotPanics(t, func() { MustNew() })
}

func TestRouter_PauseResume(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRouter(t)
	r.Pause()
	assert.True(t, r.Paused())
	r.Resume()
	assert.False(t, r.Paused())
}
