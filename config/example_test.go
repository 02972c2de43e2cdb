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

package config_test

import (
	"context"
	"fmt"

	"rivaas.dev/navigation/browser/memory"
	"rivaas.dev/navigation/config"
	"rivaas.dev/navigation/config/codec"
	"rivaas.dev/navigation/router"
)

func ExampleNew() {
	cfg := config.MustNew(
		config.WithContent([]byte("router:\n  scroll_debounce: 250ms\n"), codec.TypeYAML),
	)
	if err := cfg.Load(context.Background()); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Duration("router.scroll_debounce"))
	// Output: 250ms
}

func ExampleLoadManifest() {
	doc := []byte(`
routes:
  - path: /
  - path: /posts/:slug
    meta:
      title: Post
`)

	m, err := config.LoadManifest(context.Background(), config.WithContent(doc, codec.TypeYAML))
	if err != nil {
		fmt.Println(err)
		return
	}

	r := router.MustNew(router.WithWindow(memory.MustNew("https://example.com/")))
	if err := m.Apply(r); err != nil {
		fmt.Println(err)
		return
	}
	for _, info := range r.Routes() {
		fmt.Println(info.Path, info.Meta.Plain()["title"])
	}
	// Output:
	// / <nil>
	// /posts/:slug Post
}
