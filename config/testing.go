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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type staticSource struct {
	conf map[string]any
	err  error
}

func (s *staticSource) Load(context.Context) (map[string]any, error) {
	return s.conf, s.err
}

// TestSource returns a Source that always yields conf.
func TestSource(conf map[string]any) Source {
	return &staticSource{conf: conf}
}

// TestSourceWithError returns a Source that always fails with err.
func TestSourceWithError(err error) Source {
	return &staticSource{err: err}
}

// TestConfigLoaded returns a Config loaded from conf, failing t on error.
func TestConfigLoaded(t testing.TB, conf map[string]any, opts ...Option) *Config {
	t.Helper()

	cfg, err := New(append([]Option{WithSource(TestSource(conf))}, opts...)...)
	if err != nil {
		t.Fatalf("TestConfigLoaded: %v", err)
	}
	if err = cfg.Load(context.Background()); err != nil {
		t.Fatalf("TestConfigLoaded: load: %v", err)
	}

	return cfg
}

// TestFile writes content to a file named name in a temporary directory
// and returns its path.
func TestFile(t testing.TB, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("TestFile: %v", err)
	}

	return path
}

// TestManifest loads a manifest from content named name (the extension
// selects the format), failing t on error.
func TestManifest(t testing.TB, name string, content []byte) *Manifest {
	t.Helper()

	m, err := LoadManifest(context.Background(), WithFile(TestFile(t, name, content)))
	if err != nil {
		t.Fatalf("TestManifest: %v", err)
	}

	return m
}
