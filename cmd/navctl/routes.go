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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func routesCmd(c *cli) *cobra.Command {
	var showMeta bool

	cmd := &cobra.Command{
		Use:   "routes [prefix]",
		Short: "List declared routes",
		Long: `List the routes a manifest declares, in matching order.

With a prefix, only routes whose normalized path starts with it are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context()) //nolint:errcheck // best effort

			infos := s.router.Routes(args...)
			out := cmd.OutOrStdout()
			st := newStyles(out)
			if len(infos) == 0 {
				fmt.Fprintln(out, st.muted.Render("no routes"))
				return nil
			}

			width := 0
			for _, info := range infos {
				width = max(width, len(info.Path))
			}
			for _, info := range infos {
				line := st.value.Render(info.Path+strings.Repeat(" ", width-len(info.Path))) + "  " + st.muted.Render(info.Pattern)
				if showMeta && len(info.Meta) > 0 {
					meta, err := json.Marshal(info.Meta.Plain())
					if err != nil {
						return err
					}
					line += "  " + string(meta)
				}
				fmt.Fprintln(out, line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showMeta, "meta", "m", false, "Show route meta as JSON")

	return cmd
}
