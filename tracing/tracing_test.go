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

package tracing

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/navigation/browser/memory"
	"rivaas.dev/navigation/route"
	"rivaas.dev/navigation/router"
)

func attrMap(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{"empty service name", []Option{WithServiceName("")}, "service name cannot be empty"},
		{"empty service version", []Option{WithServiceVersion("")}, "service version cannot be empty"},
		{"multiple providers", []Option{WithStdout(), WithOTLP("localhost:4317")}, "only one provider allowed"},
		{"nil tracer provider", []Option{WithTracerProvider(nil)}, "tracer provider is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSampleRateClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0.25, 0.25},
		{3, 1},
	}

	for _, tt := range tests {
		tracer := MustNew(WithSampleRate(tt.in))
		assert.InDelta(t, tt.want, tracer.sampleRate, 1e-9)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	tracer := MustNew()
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	assert.Equal(t, NoopProvider, tracer.GetProvider())
	assert.Equal(t, DefaultServiceName, tracer.ServiceName())
	assert.Equal(t, DefaultServiceVersion, tracer.ServiceVersion())
	assert.NotNil(t, tracer.GetTracer())
	require.NoError(t, tracer.Start(context.Background()))
}

func TestOTLPRequiresStart(t *testing.T) {
	t.Parallel()

	tracer := MustNew(WithOTLPHTTP("http://localhost:4318"))
	assert.Nil(t, tracer.GetTracer())

	ctx, state := tracer.OnTransitionStart(context.Background(), "https://example.com/")
	assert.Nil(t, state)
	assert.Equal(t, context.Background(), ctx)
}

func TestTransitionSpans(t *testing.T) {
	t.Parallel()

	tracer, spans := TestingTracer(t)

	r := router.MustNew(
		router.WithWindow(memory.MustNew("https://example.com/")),
		router.WithObservability(tracer),
	)

	var traceID string
	r.Route("/products/:id", func() {
		r.Enter(func(_, next *route.Args, _ route.ScrollFunc) {
			traceID = TraceID(next.Context())
			AddSpanEventFromContext(next.Context(), "product.load", attribute.String("id", next.Params.Get("id")))
			SetSpanAttributeFromContext(next.Context(), "product.cached", true)
		})
	})

	r.Resolve("https://example.com/products/7", nil)
	r.Resolve("https://example.com/missing", nil)

	ended := spans.Ended()
	require.Len(t, ended, 2)

	matched := ended[0]
	assert.Equal(t, "navigate /products/:id", matched.Name())
	assert.Equal(t, trace.SpanKindInternal, matched.SpanKind())
	assert.Equal(t, codes.Ok, matched.Status().Code)
	assert.Equal(t, matched.SpanContext().TraceID().String(), traceID)

	attrs := attrMap(matched)
	assert.Equal(t, "https://example.com/products/7", attrs["url.full"].AsString())
	assert.Equal(t, "/products/7", attrs["url.path"].AsString())
	assert.Equal(t, "initial", attrs["navigation.kind"].AsString())
	assert.Equal(t, "completed", attrs["navigation.outcome"].AsString())
	assert.Equal(t, "/products/:id", attrs["navigation.route"].AsString())
	assert.Equal(t, int64(1), attrs["navigation.handlers"].AsInt64())
	assert.True(t, attrs["product.cached"].AsBool())
	assert.NotEmpty(t, attrs["navigation.id"].AsString())

	require.Len(t, matched.Events(), 1)
	assert.Equal(t, "product.load", matched.Events()[0].Name)

	missed := ended[1]
	assert.Equal(t, "navigate", missed.Name())
	assert.Equal(t, codes.Unset, missed.Status().Code)
	assert.Equal(t, "not_matched", attrMap(missed)["navigation.outcome"].AsString())
	require.Len(t, missed.Events(), 1)
	assert.Equal(t, "no route matched", missed.Events()[0].Name)
}

func TestPreviousRouteRecorded(t *testing.T) {
	t.Parallel()

	tracer, spans := TestingTracer(t)
	r := router.MustNew(
		router.WithWindow(memory.MustNew("https://example.com/")),
		router.WithObservability(tracer),
	)
	r.Route("/a", nil)
	r.Route("/b", nil)

	r.Resolve("/a", nil)
	r.Resolve("/b", nil)

	ended := spans.Ended()
	require.Len(t, ended, 2)
	attrs := attrMap(ended[1])
	assert.Equal(t, "change", attrs["navigation.kind"].AsString())
	assert.Equal(t, "/a", attrs["navigation.previous_route"].AsString())
}

func TestSupersededTransitionSpan(t *testing.T) {
	t.Parallel()

	tracer, spans := TestingTracer(t)
	r := router.MustNew(
		router.WithWindow(memory.MustNew("https://example.com/")),
		router.WithObservability(tracer),
	)
	r.Route("/a", func() {
		r.Enter(func(_, _ *route.Args, _ route.ScrollFunc) { r.Resolve("/b", nil) })
	})
	r.Route("/b", nil)

	r.Resolve("/a", nil)

	ended := spans.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "navigate /b", ended[0].Name())
	assert.Equal(t, "completed", attrMap(ended[0])["navigation.outcome"].AsString())

	outer := ended[1]
	assert.Equal(t, "navigate /a", outer.Name())
	assert.Equal(t, codes.Ok, outer.Status().Code)
	assert.Equal(t, "superseded", attrMap(outer)["navigation.outcome"].AsString())
	require.Len(t, outer.Events(), 1)
	assert.Equal(t, "superseded by a nested resolution", outer.Events()[0].Name)
}

func TestSampling(t *testing.T) {
	t.Parallel()

	tracer, spans := TestingTracer(t, WithSampleRate(0))
	ctx, state := tracer.OnTransitionStart(context.Background(), "/a")
	assert.Nil(t, state)
	tracer.OnTransitionEnd(ctx, state, router.TransitionInfo{})
	assert.Empty(t, spans.Ended())
}

func TestHooks(t *testing.T) {
	t.Parallel()

	var started string
	var finished router.Outcome
	tracer, spans := TestingTracer(t,
		WithSpanStartHook(func(_ context.Context, span trace.Span, location string) {
			started = location
			span.SetAttributes(attribute.String("tenant", "acme"))
		}),
		WithSpanFinishHook(func(_ trace.Span, info router.TransitionInfo) {
			finished = info.Outcome
		}),
	)

	ctx, state := tracer.OnTransitionStart(context.Background(), "https://other.example/")
	tracer.OnTransitionEnd(ctx, state, router.TransitionInfo{Outcome: router.OutcomeCrossOrigin})

	assert.Equal(t, "https://other.example/", started)
	assert.Equal(t, router.OutcomeCrossOrigin, finished)
	require.Len(t, spans.Ended(), 1)
	assert.Equal(t, "acme", attrMap(spans.Ended()[0])["tenant"].AsString())
}

func TestInject(t *testing.T) {
	t.Parallel()

	tracer, _ := TestingTracer(t, WithCustomPropagator(propagation.TraceContext{}))
	ctx, state := tracer.OnTransitionStart(context.Background(), "/a")
	defer tracer.OnTransitionEnd(ctx, state, router.TransitionInfo{})

	headers := http.Header{}
	tracer.Inject(ctx, headers)
	assert.Contains(t, headers.Get("traceparent"), TraceID(ctx))
	assert.NotEmpty(t, SpanID(ctx))
}

func TestIDsWithoutSpan(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TraceID(context.Background()))
	assert.Empty(t, SpanID(context.Background()))
	assert.NotPanics(t, func() {
		SetSpanAttributeFromContext(context.Background(), "k", 1)
		AddSpanEventFromContext(context.Background(), "e")
	})
}

func TestBuildAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value any
		want  attribute.Value
	}{
		{"s", attribute.StringValue("s")},
		{3, attribute.IntValue(3)},
		{int64(4), attribute.Int64Value(4)},
		{1.5, attribute.Float64Value(1.5)},
		{true, attribute.BoolValue(true)},
		{[]int{1}, attribute.StringValue("[1]")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, buildAttribute("k", tt.value).Value)
	}
}

func TestSplitEndpoint(t *testing.T) {
	t.Parallel()

	host, insecure := splitEndpoint("http://localhost:4318/v1/traces")
	assert.Equal(t, "localhost:4318", host)
	assert.True(t, insecure)

	host, insecure = splitEndpoint("https://collector:4318")
	assert.Equal(t, "collector:4318", host)
	assert.False(t, insecure)
}

func TestShutdownLeavesCustomProvider(t *testing.T) {
	t.Parallel()

	tracer, spans := TestingTracer(t)
	require.NoError(t, tracer.Shutdown(context.Background()))

	ctx, state := tracer.OnTransitionStart(context.Background(), "/a")
	tracer.OnTransitionEnd(ctx, state, router.TransitionInfo{Outcome: router.OutcomeCompleted})
	assert.Len(t, spans.Ended(), 1)
}
