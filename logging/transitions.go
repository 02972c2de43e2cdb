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

package logging

import (
	"context"
	"log/slog"
	"time"

	"rivaas.dev/navigation/router"
	"rivaas.dev/navigation/telemetry/semconv"
)

// TransitionLog is a [router.ObservabilityRecorder] that writes one
// "transition" entry per resolution. Completed and paused transitions are
// logged at info, ignored locations at debug.
//
// Example:
//
//	logger := logging.MustNew(logging.WithConsoleHandler())
//	r := router.MustNew(router.WithObservability(logging.NewTransitionLog(logger.Logger())))
type TransitionLog struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewTransitionLog creates a TransitionLog writing to logger.
func NewTransitionLog(logger *slog.Logger) *TransitionLog {
	return &TransitionLog{logger: logger, now: time.Now}
}

var _ router.ObservabilityRecorder = (*TransitionLog)(nil)

// OnTransitionStart implements [router.ObservabilityRecorder].
func (tl *TransitionLog) OnTransitionStart(ctx context.Context, _ string) (context.Context, any) {
	return ctx, tl.now()
}

// OnTransitionEnd implements [router.ObservabilityRecorder].
func (tl *TransitionLog) OnTransitionEnd(ctx context.Context, state any, info router.TransitionInfo) {
	start, ok := state.(time.Time)
	if !ok {
		return
	}

	level := slog.LevelInfo
	if info.Outcome == router.OutcomeNotMatched || info.Outcome == router.OutcomeCrossOrigin {
		level = slog.LevelDebug
	}
	if !tl.logger.Enabled(ctx, level) {
		return
	}

	attrs := []slog.Attr{
		slog.String(semconv.Location, info.Location),
		slog.String(semconv.Outcome, string(info.Outcome)),
		slog.Duration("duration", tl.now().Sub(start)),
	}
	if info.ID != "" {
		attrs = append(attrs,
			slog.String(FieldTransitionID, info.ID),
			slog.String(semconv.Kind, string(info.Kind)),
			slog.String(FieldRoute, info.Path),
			slog.Int(semconv.Handlers, info.Handlers),
		)
	}
	if info.Previous != "" {
		attrs = append(attrs, slog.String(semconv.PreviousRoute, info.Previous))
	}
	if info.Superseded > 0 {
		attrs = append(attrs, slog.Int(semconv.Superseded, info.Superseded))
	}

	tl.logger.LogAttrs(ctx, level, "transition", attrs...)
}
