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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
router:
  base_url: https://blog.example/
observability:
  metrics: prometheus
  tracing: noop
meta:
  layout: main
routes:
  - path: /
    meta:
      title: Home
  - path: /posts/:slug
    meta:
      title: Post
    matches:
      slug: '[a-z-]+'
  - path: /archive/:year?
    matches:
      year: '\d{4}'
`

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-prefix="}, args...))
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "routes.yaml", manifest)

	out, _, err := run(t, "-f", path, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "/posts/:slug")
	assert.Contains(t, out, "/archive/:year?")

	out, _, err = run(t, "-f", path, "routes", "/posts", "--meta")
	require.NoError(t, err)
	assert.Contains(t, out, `{"layout":"main","title":"Post"}`)
	assert.NotContains(t, out, "/archive")

	out, _, err = run(t, "-f", path, "routes", "/nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "no routes")
}

func TestResolve(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "routes.yaml", manifest)

	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  string
	}{
		{
			name:     "path",
			args:     []string{"resolve", "/posts/hello-world"},
			contains: []string{"/posts/:slug", "slug=hello-world", `"title":"Post"`, "initial"},
		},
		{
			name:     "absolute url",
			args:     []string{"resolve", "https://blog.example/archive"},
			contains: []string{"/archive/:year?", "year (unset)"},
		},
		{
			name:     "update from same route",
			args:     []string{"resolve", "/posts/b", "--from", "/posts/a"},
			contains: []string{"update", "slug=b"},
		},
		{
			name:     "change from other route",
			args:     []string{"resolve", "/archive/2024", "--from", "/"},
			contains: []string{"change", "year=2024"},
		},
		{
			name:    "validator rejects",
			args:    []string{"resolve", "/posts/Not_A_Slug"},
			wantErr: "no route matches",
		},
		{
			name:    "cross origin",
			args:    []string{"resolve", "https://other.example/"},
			wantErr: "is not on origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := run(t, append([]string{"-f", path}, tt.args...)...)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestResolveBaseURLFlag(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "routes.yaml", manifest)

	_, _, err := run(t, "-f", path, "--base-url", "https://mirror.example/", "resolve", "https://blog.example/")
	require.ErrorContains(t, err, "is not on origin https://mirror.example/")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "routes.yaml", manifest)
	out, _, err := run(t, "-f", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "3 routes in 0 groups")

	bad := writeManifest(t, "bad.json", `{"routes": [{"path": "/:id", "matches": {"id": "("}}]}`)
	_, _, err = run(t, "-f", bad, "validate")
	require.ErrorContains(t, err, "route manifest is invalid")

	_, _, err = run(t, "validate")
	require.ErrorIs(t, err, errNoManifest)
}

func TestManifestsMergeInOrder(t *testing.T) {
	t.Parallel()

	base := writeManifest(t, "base.yaml", manifest)
	override := writeManifest(t, "override.toml", "[meta]\nlayout = \"wide\"\n")

	out, _, err := run(t, "-f", base, "-f", override, "resolve", "/")
	require.NoError(t, err)
	assert.Contains(t, out, `"layout":"wide"`)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NAVCTLTEST_META__LAYOUT", "print")

	path := writeManifest(t, "routes.yaml", manifest)
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", path, "--env-prefix", "NAVCTLTEST_", "resolve", "/"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `"layout":"print"`)
}

func TestExport(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "routes.yaml", manifest)
	dest := filepath.Join(t.TempDir(), "merged.json")

	out, _, err := run(t, "-f", path, "export", "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc["routes"], 3)
	assert.Equal(t, map[string]any{"layout": "main"}, doc["meta"])

	_, _, err = run(t, "-f", path, "export")
	require.ErrorContains(t, err, "--output is required")
}

func TestTransitionIDFormat(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "routes.yaml", manifest)

	out, _, err := run(t, "-f", path, "--id-format", "ulid", "resolve", "/")
	require.NoError(t, err)
	assert.Regexp(t, `id\s+[0-9A-HJKMNP-TV-Z]{26}`, out)

	out, _, err = run(t, "-f", path, "resolve", "/")
	require.NoError(t, err)
	assert.Regexp(t, `id\s+[0-9a-f]{8}-[0-9a-f]{4}-`, out)

	_, _, err = run(t, "-f", path, "--id-format", "serial", "resolve", "/")
	require.ErrorContains(t, err, "unknown id format")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
}
