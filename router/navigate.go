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
	"context"

	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
)

// Navigate moves to location: it pushes a history entry when location
// differs from the current URL, then resolves it.
//
// When the history refuses the push, Navigate falls back to a full page
// load through Location.Assign and starts no transition. Cross-origin
// locations are ignored.
func (r *Router) Navigate(location string, done route.Callback) bool {
	return r.NavigateContext(context.Background(), location, done)
}

// NavigateContext is Navigate with a context for the resulting transition.
func (r *Router) NavigateContext(ctx context.Context, location string, done route.Callback) bool {
	u, ok := r.internalURL(location)
	if !ok {
		r.emit(DiagCrossOrigin, "location is not same-origin; ignored", map[string]any{
			"location": location,
		})
		return false
	}

	if r.history != nil && u.String() != r.location.URL().String() {
		if err := r.history.Push(merge.Mapping{}, u); err != nil {
			r.emit(DiagHistoryFallback, "history push failed; loading page", map[string]any{
				"url":   u.String(),
				"error": err.Error(),
			})
			r.logger.Warn("history push failed, falling back to page load", "url", u.String(), "error", err)
			r.location.Assign(u)
			return false
		}
	}

	return r.resolveURL(ctx, u, done)
}
