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

// Package logging provides structured logging for the navigation engine.
//
// It wraps [log/slog] behind a [Logger] configured with functional options:
// JSON for log pipelines, key=value text, or a styled console format for
// development. The router accepts the underlying *slog.Logger:
//
//	logger := logging.MustNew(logging.WithConsoleHandler(), logging.WithDebugLevel())
//	r := router.MustNew(router.WithLogger(logger.Logger()))
//
// [TransitionLog] writes one canonical line per resolution, and
// [ForTransition] returns a logger annotated with the transition ID, route
// and trace IDs for use inside lifecycle handlers.
//
// Keys listed by [WithRedactedKeys] (token, password, secret and
// authorization by default) are masked in every handler.
package logging
