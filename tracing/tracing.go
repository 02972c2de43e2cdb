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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., failed to export spans).
	EventError EventType = iota
	// EventWarning indicates a warning event (e.g., deprecated configuration).
	EventWarning
	// EventInfo indicates an informational event (e.g., tracing initialized).
	EventInfo
	// EventDebug indicates a debug event (e.g., detailed operation logs).
	EventDebug
)

// Event represents an internal operational event from the tracing package.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events from the tracing package.
//
// Example custom handler:
//
//	tracing.WithEventHandler(func(e tracing.Event) {
//	    if e.Type == tracing.EventError {
//	        alerts.Notify(e.Message)
//	    }
//	    slog.Default().Info(e.Message, e.Args...)
//	})
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the provided slog.Logger.
// If logger is nil, returns a no-op handler that discards all events.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

const (
	// DefaultServiceName is the default service name used for tracing when none is provided.
	DefaultServiceName = "navigation"

	// DefaultServiceVersion is the default service version when none is provided.
	DefaultServiceVersion = "1.0.0"

	// DefaultSampleRate is the default sampling rate (100% of transitions).
	DefaultSampleRate = 1.0

	// ScopeName is the instrumentation scope of every span.
	ScopeName = "rivaas.dev/navigation/tracing"
)

// Knuth's multiplicative hash constant, spreads the sampling counter uniformly.
const samplingMultiplier = 2654435761

// Provider represents the available tracing providers.
type Provider string

const (
	// NoopProvider creates spans without exporting them (default).
	NoopProvider Provider = "noop"

	// StdoutProvider exports traces to stdout (development/testing).
	StdoutProvider Provider = "stdout"

	// OTLPProvider exports traces via OTLP gRPC protocol.
	OTLPProvider Provider = "otlp"

	// OTLPHTTPProvider exports traces via OTLP HTTP protocol.
	OTLPHTTPProvider Provider = "otlp-http"
)

// ErrNotStarted indicates an OTLP tracer was used before Start.
var ErrNotStarted = errors.New("tracer not started; call Start(ctx) for OTLP providers")

// Tracer traces navigation transitions.
//
// Tracer is immutable after New except for the one-time provider
// initialization performed by Start.
type Tracer struct {
	tracer               trace.Tracer
	propagator           propagation.TextMapPropagator
	tracerProvider       trace.TracerProvider
	sdkProvider          *sdktrace.TracerProvider
	customTracerProvider bool
	registerGlobal       bool

	provider     Provider
	providerSet  bool
	otlpEndpoint string
	otlpInsecure bool

	serviceName    string
	serviceVersion string

	sampleRate        float64
	samplingCounter   atomic.Uint64
	samplingThreshold uint64

	spanStartHook  SpanStartHook
	spanFinishHook SpanFinishHook

	eventHandler     EventHandler
	validationErrors []error

	startOnce    sync.Once
	startErr     error
	shutdownOnce sync.Once
	shutdownErr  error
}

// New creates a new [Tracer] with the given options.
//
// Noop and stdout providers are ready immediately. OTLP providers open
// network connections and are initialized by [Tracer.Start].
//
// Default configuration:
//   - Service name: DefaultServiceName
//   - Service version: DefaultServiceVersion
//   - Sample rate: DefaultSampleRate
//   - Provider: NoopProvider
func New(opts ...Option) (*Tracer, error) {
	t := &Tracer{
		serviceName:    DefaultServiceName,
		serviceVersion: DefaultServiceVersion,
		propagator:     otel.GetTextMapPropagator(),
		sampleRate:     DefaultSampleRate,
		provider:       NoopProvider,
		eventHandler:   func(Event) {},
	}

	for _, opt := range opts {
		opt(t)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if t.customTracerProvider || (t.provider != OTLPProvider && t.provider != OTLPHTTPProvider) {
		if err := t.initializeProvider(); err != nil {
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
	}

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Tracer {
	t, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize tracing: %v", err))
	}

	return t
}

func (t *Tracer) validate() error {
	errs := append([]error(nil), t.validationErrors...)

	if t.serviceName == "" {
		errs = append(errs, errors.New("service name cannot be empty"))
	}
	if t.serviceVersion == "" {
		errs = append(errs, errors.New("service version cannot be empty"))
	}
	if t.sampleRate < 0.0 || t.sampleRate > 1.0 {
		errs = append(errs, fmt.Errorf("sample rate must be between 0.0 and 1.0, got %f", t.sampleRate))
	}

	switch {
	case t.sampleRate >= 1.0:
		t.samplingThreshold = ^uint64(0)
	case t.sampleRate <= 0.0:
		t.samplingThreshold = 0
	default:
		t.samplingThreshold = uint64(t.sampleRate * float64(^uint64(0)))
	}

	if t.provider == OTLPProvider && t.otlpEndpoint == "" {
		t.emitWarning("OTLP endpoint not specified, will use default", "default", "localhost:4317")
	}

	return errors.Join(errs...)
}

// Start initializes OTLP providers. It is a no-op for the other providers
// and safe to call more than once.
func (t *Tracer) Start(ctx context.Context) error {
	if t.customTracerProvider || t.sdkProvider != nil {
		return nil
	}
	t.startOnce.Do(func() {
		t.startErr = t.initializeProviderWithContext(ctx)
	})

	return t.startErr
}

// ServiceName returns the service name.
func (t *Tracer) ServiceName() string {
	return t.serviceName
}

// ServiceVersion returns the service version.
func (t *Tracer) ServiceVersion() string {
	return t.serviceVersion
}

// GetProvider returns the configured provider.
func (t *Tracer) GetProvider() Provider {
	return t.provider
}

// GetTracer returns the OpenTelemetry tracer, or nil before Start for OTLP providers.
func (t *Tracer) GetTracer() trace.Tracer {
	return t.tracer
}

// Inject writes the trace context of ctx into headers, for requests a
// lifecycle handler issues on behalf of the transition.
//
// Example:
//
//	req, _ := http.NewRequestWithContext(next.Context(), http.MethodGet, apiURL, nil)
//	tracer.Inject(next.Context(), req.Header)
func (t *Tracer) Inject(ctx context.Context, headers http.Header) {
	t.propagator.Inject(ctx, propagation.HeaderCarrier(headers))
}

// Shutdown flushes and stops a provider this package created.
// Custom tracer providers are left to their owner.
func (t *Tracer) Shutdown(ctx context.Context) error {
	t.shutdownOnce.Do(func() {
		if t.sdkProvider == nil || t.customTracerProvider {
			return
		}
		if err := t.sdkProvider.Shutdown(ctx); err != nil {
			t.shutdownErr = fmt.Errorf("tracer provider shutdown: %w", err)
			t.emitError("Error shutting down tracer provider", "error", err)
			return
		}
		t.emitDebug("Tracer provider shut down")
	})

	return t.shutdownErr
}

func (t *Tracer) shouldSample() bool {
	switch t.samplingThreshold {
	case ^uint64(0):
		return true
	case 0:
		return false
	}

	return t.samplingCounter.Add(1)*samplingMultiplier <= t.samplingThreshold
}

func (t *Tracer) emitError(msg string, args ...any) {
	t.eventHandler(Event{Type: EventError, Message: msg, Args: args})
}

func (t *Tracer) emitWarning(msg string, args ...any) {
	t.eventHandler(Event{Type: EventWarning, Message: msg, Args: args})
}

func (t *Tracer) emitInfo(msg string, args ...any) {
	t.eventHandler(Event{Type: EventInfo, Message: msg, Args: args})
}

func (t *Tracer) emitDebug(msg string, args ...any) {
	t.eventHandler(Event{Type: EventDebug, Message: msg, Args: args})
}

// buildAttribute creates an OpenTelemetry attribute from a key-value pair.
// Other types than string, int, int64, float64 and bool are formatted with %v.
func buildAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}

// TraceID returns the trace ID of the span in ctx, or "".
func TraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}

	return ""
}

// SpanID returns the span ID of the span in ctx, or "".
func SpanID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.SpanID().String()
	}

	return ""
}

// SetSpanAttributeFromContext adds an attribute to the current span from context.
// This is a no-op if the span is not recording.
func SetSpanAttributeFromContext(ctx context.Context, key string, value any) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(buildAttribute(key, value))
}

// AddSpanEventFromContext adds an event to the current span from context.
// This is a no-op if the span is not recording.
func AddSpanEventFromContext(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}
