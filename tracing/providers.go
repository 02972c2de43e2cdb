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
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// initializeProvider sets up providers that need no network connection.
func (t *Tracer) initializeProvider() error {
	if t.customTracerProvider {
		return t.useCustomProvider()
	}

	switch t.provider {
	case NoopProvider:
		t.install(sdktrace.NewTracerProvider(sdktrace.WithResource(createResource(t.serviceName, t.serviceVersion))))
		return nil
	case StdoutProvider:
		return t.initStdoutProvider()
	case OTLPProvider, OTLPHTTPProvider:
		return ErrNotStarted
	default:
		return fmt.Errorf("unsupported tracing provider: %s", t.provider)
	}
}

// initializeProviderWithContext initializes OTLP providers. The context
// bounds connection establishment.
func (t *Tracer) initializeProviderWithContext(ctx context.Context) error {
	switch t.provider {
	case OTLPProvider:
		return t.initOTLPProvider(ctx)
	case OTLPHTTPProvider:
		return t.initOTLPHTTPProvider(ctx)
	default:
		return t.initializeProvider()
	}
}

func (t *Tracer) useCustomProvider() error {
	t.emitDebug("Using custom user-provided tracer provider")
	if t.tracer == nil {
		t.tracer = t.tracerProvider.Tracer(ScopeName)
	}
	if t.registerGlobal {
		otel.SetTracerProvider(t.tracerProvider)
	}

	return nil
}

// install makes tp the provider of this tracer and optionally the global one.
func (t *Tracer) install(tp *sdktrace.TracerProvider) {
	t.sdkProvider = tp
	t.tracerProvider = tp
	if t.tracer == nil {
		t.tracer = tp.Tracer(ScopeName)
	}

	if t.registerGlobal {
		t.emitDebug("Setting global OpenTelemetry tracer provider", "provider", string(t.provider))
		otel.SetTracerProvider(tp)
	} else {
		t.emitDebug("Skipping global tracer provider registration", "provider", string(t.provider))
	}
}

func (t *Tracer) initStdoutProvider() error {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	t.install(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(createResource(t.serviceName, t.serviceVersion)),
	))
	t.emitInfo("Tracing initialized", "provider", "stdout", "service", t.serviceName)

	return nil
}

func (t *Tracer) initOTLPProvider(ctx context.Context) error {
	var opts []otlptracegrpc.Option
	if t.otlpEndpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(t.otlpEndpoint))
	}
	if t.otlpInsecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create OTLP gRPC exporter: %w", err)
	}

	t.install(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(createResource(t.serviceName, t.serviceVersion)),
	))
	t.emitInfo("Tracing initialized", "provider", "otlp", "endpoint", t.otlpEndpoint, "service", t.serviceName)

	return nil
}

func (t *Tracer) initOTLPHTTPProvider(ctx context.Context) error {
	var opts []otlptracehttp.Option
	if t.otlpEndpoint != "" {
		endpoint, insecure := splitEndpoint(t.otlpEndpoint)
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create OTLP HTTP exporter: %w", err)
	}

	t.install(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(createResource(t.serviceName, t.serviceVersion)),
	))
	t.emitInfo("Tracing initialized", "provider", "otlp-http", "endpoint", t.otlpEndpoint, "service", t.serviceName)

	return nil
}

// splitEndpoint strips the scheme and path of an endpoint URL and reports
// whether it used plain http.
func splitEndpoint(endpoint string) (hostport string, insecure bool) {
	if trimmed, ok := strings.CutPrefix(endpoint, "http://"); ok {
		endpoint, insecure = trimmed, true
	} else if trimmed, ok := strings.CutPrefix(endpoint, "https://"); ok {
		endpoint = trimmed
	}
	if idx := strings.Index(endpoint, "/"); idx != -1 {
		endpoint = endpoint[:idx]
	}

	return endpoint, insecure
}

// createResource creates an OpenTelemetry resource with service information.
func createResource(serviceName, serviceVersion string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	)
}
