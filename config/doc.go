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

// Package config loads layered configuration and declarative route manifests.
//
// A [Config] reads every registered [Source] in order, deep-merges the
// results (later sources override earlier ones), optionally validates the
// merged map against a JSON schema and custom validators, and binds it to a
// struct:
//
//	var settings Settings
//	cfg := config.MustNew(
//	    config.WithFile("navigation.yaml"),
//	    config.WithEnv("NAV_"),
//	    config.WithBinding(&settings),
//	)
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	debounce := cfg.Duration("router.scroll_debounce")
//
// Sources: files (format detected from the extension), raw content,
// environment variables and Consul KV (skipped when CONSUL_HTTP_ADDR is unset).
// Paths expand ${VAR} references.
//
// # Route manifests
//
// [LoadManifest] reads a [Manifest]: instance-level meta and matches, groups
// with their own data and routes, and top-level routes. It is validated
// against the built-in manifest schema and struct rules, and every route
// pattern is compiled before it is accepted. [Manifest.Apply] declares it on
// a router in document order:
//
//	m, err := config.LoadManifest(ctx, config.WithFile("routes.yaml"))
//	if err != nil {
//	    return err
//	}
//	r := router.MustNew(m.RouterOptions()...)
//	err = m.Apply(r, func(path string) {
//	    r.Enter(views[path])
//	})
//
// Keys are case-insensitive by default. Manifests keep key case so that
// meta keys reach handlers unchanged.
package config
