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
	"github.com/spf13/cast"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/route"
)

const scrollPositionKey = "scrollPosition"

// restoreScroll computes the scroll target of a transition and delivers
// it to deliver, or to the viewport when deliver is nil.
//
// The target is the position saved in the transition's history entry,
// else the offset of the URL fragment, else the origin.
func (r *Router) restoreScroll(args *route.Args, deliver func(browser.Position)) {
	var pos browser.Position

	if saved, ok := savedScroll(args.History); ok {
		pos = saved
	} else if frag := args.URL.Fragment; frag != "" && r.document != nil {
		if off, ok := r.document.FragmentOffset(frag); ok {
			pos = off
		}
	}

	switch {
	case deliver != nil:
		deliver(pos)
	case r.viewport != nil:
		r.viewport.ScrollTo(pos)
	}

	r.state.scrollHandled = true
}

// savedScroll reads the scroll position stored in a history entry.
// Coordinates that are missing or not numeric stay 0.
func savedScroll(state merge.Mapping) (browser.Position, bool) {
	v, ok := state.Lookup(scrollPositionKey)
	if !ok {
		return browser.Position{}, false
	}
	m, ok := v.(merge.Mapping)
	if !ok {
		return browser.Position{}, false
	}

	var pos browser.Position
	if x, ok := m.Get("x"); ok {
		pos.X = cast.ToFloat64(x)
	}
	if y, ok := m.Get("y"); ok {
		pos.Y = cast.ToFloat64(y)
	}

	return pos, true
}

func scrollState(p browser.Position) merge.Mapping {
	return merge.Mapping{
		scrollPositionKey: merge.Mapping{
			"x": merge.S(p.X),
			"y": merge.S(p.Y),
		},
	}
}
