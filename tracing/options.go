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
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Option defines functional options for [Tracer] configuration.
type Option func(*Tracer)

// WithTracerProvider uses a caller-managed tracer provider. Provider options
// are ignored and Shutdown leaves the provider running.
//
// Example:
//
//	recorder := tracetest.NewSpanRecorder()
//	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
//	tracer := tracing.MustNew(tracing.WithTracerProvider(tp))
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(t *Tracer) {
		if provider == nil {
			t.validationErrors = append(t.validationErrors, fmt.Errorf("tracer provider is nil"))
			return
		}
		t.tracerProvider = provider
		t.customTracerProvider = true
	}
}

// WithGlobalTracerProvider registers the tracer provider with otel.SetTracerProvider.
func WithGlobalTracerProvider() Option {
	return func(t *Tracer) {
		t.registerGlobal = true
	}
}

// WithServiceName sets the service name recorded in the resource.
func WithServiceName(name string) Option {
	return func(t *Tracer) {
		t.serviceName = name
	}
}

// WithServiceVersion sets the service version recorded in the resource.
func WithServiceVersion(version string) Option {
	return func(t *Tracer) {
		t.serviceVersion = version
	}
}

// WithSampleRate sets the fraction of transitions traced. Values outside
// [0, 1] are clamped.
//
// Example:
//
//	tracer := tracing.MustNew(tracing.WithSampleRate(0.1)) // 10% of transitions
func WithSampleRate(rate float64) Option {
	return func(t *Tracer) {
		t.sampleRate = min(max(rate, 0.0), 1.0)
	}
}

// WithCustomTracer uses tracer instead of one obtained from the provider.
func WithCustomTracer(tracer trace.Tracer) Option {
	return func(t *Tracer) {
		t.tracer = tracer
	}
}

// WithCustomPropagator sets the propagator used by [Tracer.Inject].
// Defaults to otel.GetTextMapPropagator().
func WithCustomPropagator(propagator propagation.TextMapPropagator) Option {
	return func(t *Tracer) {
		t.propagator = propagator
	}
}

// WithEventHandler sets a custom event handler for internal operational events.
func WithEventHandler(handler EventHandler) Option {
	return func(t *Tracer) {
		if handler != nil {
			t.eventHandler = handler
		}
	}
}

// WithLogger reports internal events to logger.
func WithLogger(logger *slog.Logger) Option {
	return WithEventHandler(DefaultEventHandler(logger))
}

// WithSpanStartHook sets a callback invoked after a transition span started.
func WithSpanStartHook(hook SpanStartHook) Option {
	return func(t *Tracer) {
		t.spanStartHook = hook
	}
}

// WithSpanFinishHook sets a callback invoked before a transition span ends.
func WithSpanFinishHook(hook SpanFinishHook) Option {
	return func(t *Tracer) {
		t.spanFinishHook = hook
	}
}

// OTLPOption configures the OTLP gRPC provider.
type OTLPOption func(*otlpConfig)

type otlpConfig struct {
	insecure bool
}

// OTLPInsecure disables TLS for the gRPC connection.
func OTLPInsecure() OTLPOption {
	return func(c *otlpConfig) {
		c.insecure = true
	}
}

// WithOTLP selects the OTLP gRPC provider. Endpoint format is "host:port".
//
// Example:
//
//	tracer := tracing.MustNew(tracing.WithOTLP("localhost:4317", tracing.OTLPInsecure()))
func WithOTLP(endpoint string, opts ...OTLPOption) Option {
	return func(t *Tracer) {
		if !t.setProvider(OTLPProvider) {
			return
		}
		t.otlpEndpoint = endpoint
		cfg := &otlpConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
		t.otlpInsecure = cfg.insecure
	}
}

// WithOTLPHTTP selects the OTLP HTTP provider. An "http://" endpoint disables TLS.
//
// Example:
//
//	tracer := tracing.MustNew(tracing.WithOTLPHTTP("http://localhost:4318"))
func WithOTLPHTTP(endpoint string) Option {
	return func(t *Tracer) {
		if t.setProvider(OTLPHTTPProvider) {
			t.otlpEndpoint = endpoint
		}
	}
}

// WithStdout selects the stdout provider.
func WithStdout() Option {
	return func(t *Tracer) {
		t.setProvider(StdoutProvider)
	}
}

// WithNoop selects the noop provider (default).
func WithNoop() Option {
	return func(t *Tracer) {
		t.setProvider(NoopProvider)
	}
}

func (t *Tracer) setProvider(p Provider) bool {
	if t.providerSet {
		t.validationErrors = append(t.validationErrors,
			fmt.Errorf("provider: multiple providers configured (already have %q, cannot add %q); only one provider allowed", t.provider, p))

		return false
	}
	t.provider = p
	t.providerSet = true

	return true
}
