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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"rivaas.dev/navigation/route"
	"rivaas.dev/navigation/router"
)

// capture records the TransitionInfo of every resolution.
type capture struct {
	infos []router.TransitionInfo
}

func (c *capture) OnTransitionStart(ctx context.Context, _ string) (context.Context, any) {
	return ctx, struct{}{}
}

func (c *capture) OnTransitionEnd(_ context.Context, _ any, info router.TransitionInfo) {
	c.infos = append(c.infos, info)
}

func resolveCmd(c *cli) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "resolve <location>",
		Short: "Show which route handles a location",
		Long: `Resolve a location the way the router does on navigation and print
the matched route, its parameters and meta.

The location may be a path or an absolute URL on the base URL's origin.
With --from, that location is resolved first, so the transition kind
(update or change) reflects moving from it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := &capture{}
			s, err := c.open(cmd.Context(), cmd.ErrOrStderr(), router.WithObservability(rec))
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context()) //nolint:errcheck // best effort

			if from != "" {
				s.router.ResolveContext(cmd.Context(), from, nil)
			}

			var next *route.Args
			s.router.ResolveContext(cmd.Context(), args[0], func(_, n *route.Args, _ route.ScrollFunc) {
				next = n
			})

			info := rec.infos[len(rec.infos)-1]
			switch info.Outcome {
			case router.OutcomeCrossOrigin:
				return fmt.Errorf("%q is not on origin %s", args[0], s.base)
			case router.OutcomeNotMatched:
				return fmt.Errorf("no route matches %q", args[0])
			}

			return printResolution(cmd, info, next)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Location to resolve first")

	return cmd
}

func printResolution(cmd *cobra.Command, info router.TransitionInfo, next *route.Args) error {
	out := cmd.OutOrStdout()
	st := newStyles(out)
	row := func(key, value string) {
		fmt.Fprintln(out, st.key.Render(key)+st.value.Render(value))
	}

	fmt.Fprintln(out, st.title.Render(info.Path))
	row("pattern", info.Pattern)
	row("kind", string(info.Kind))
	if info.Previous != "" {
		row("from", info.Previous)
	}

	if next == nil {
		row("outcome", string(info.Outcome))
		return nil
	}

	names := make([]string, 0, len(next.Params))
	for name := range next.Params {
		names = append(names, name)
	}
	slices.Sort(names)
	params := make([]string, 0, len(names))
	for _, name := range names {
		if v, ok := next.Params.Lookup(name); ok {
			params = append(params, name+"="+v)
		} else {
			params = append(params, name+" (unset)")
		}
	}
	if len(params) > 0 {
		row("params", strings.Join(params, " "))
	}

	if len(next.Meta) > 0 {
		meta, err := json.Marshal(next.Meta.Plain())
		if err != nil {
			return err
		}
		row("meta", string(meta))
	}
	row("id", next.ID)

	return nil
}
