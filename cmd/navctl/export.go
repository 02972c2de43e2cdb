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
	"fmt"

	"github.com/spf13/cobra"

	"rivaas.dev/navigation/config"
)

func exportCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the merged manifest",
		Long: `Merge every manifest and the environment overrides, validate the
result and write it to a single file. The output format follows the
file extension (.json, .yaml, .yml or .toml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			if _, err := c.load(cmd.Context()); err != nil {
				return err
			}

			opts, err := c.sources()
			if err != nil {
				return err
			}
			cfg, err := config.New(append(opts, config.WithPreserveCase(), config.WithFileDumper(output))...)
			if err != nil {
				return err
			}
			if err = cfg.Load(cmd.Context()); err != nil {
				return err
			}
			if err = cfg.Dump(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", newStyles(out).ok.Render("wrote"), output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")

	return cmd
}
