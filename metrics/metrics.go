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

package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"rivaas.dev/navigation/telemetry/semconv"
)

// ScopeName is the instrumentation scope of every instrument.
const ScopeName = "rivaas.dev/navigation/metrics"

// DefaultDurationBuckets are histogram boundaries in seconds for the
// synchronous part of a transition. Covers 100µs to 1s.
var DefaultDurationBuckets = []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1}

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., failed to export metrics).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event represents an internal operational event from the metrics package.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events from the metrics package.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to logger.
// If logger is nil, events are discarded.
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

// Provider represents the available metrics providers.
type Provider string

const (
	// PrometheusProvider uses the Prometheus exporter (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider uses the OTLP HTTP exporter.
	OTLPProvider Provider = "otlp"
	// StdoutProvider uses the stdout exporter (development/testing).
	StdoutProvider Provider = "stdout"
)

var (
	// ErrConflictingProviders indicates more than one provider option was given.
	ErrConflictingProviders = errors.New("only one of WithPrometheus, WithOTLP or WithStdout can be used")

	// ErrNoHandler indicates Handler was called on a non-Prometheus recorder.
	ErrNoHandler = errors.New("metrics handler only available with the Prometheus provider")
)

// Recorder holds OpenTelemetry metrics configuration and instruments.
//
// By default the global OpenTelemetry meter provider is left untouched; use
// WithGlobalMeterProvider to register it.
type Recorder struct {
	meterProvider       metric.MeterProvider
	customMeterProvider bool
	registerGlobal      bool

	provider         Provider
	providerSetCount int
	otlpEndpoint     string
	exportInterval   time.Duration

	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler

	serviceName     string
	serviceVersion  string
	durationBuckets []float64

	eventHandler     EventHandler
	validationErrors []error

	transitions metric.Int64Counter
	duration    metric.Float64Histogram
	handlers    metric.Int64Counter
	superseded  metric.Int64Counter
	diagnostics metric.Int64Counter

	serviceAttrs []attribute.KeyValue
	now          func() time.Time
	shutdown     atomic.Bool
}

// New creates a [Recorder] with the given options.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		provider:        PrometheusProvider,
		exportInterval:  30 * time.Second,
		serviceName:     "navigation",
		serviceVersion:  "1.0.0",
		durationBuckets: DefaultDurationBuckets,
		eventHandler:    func(Event) {},
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := r.initializeProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize metrics: %v", err))
	}

	return r
}

func (r *Recorder) validate() error {
	errs := append([]error(nil), r.validationErrors...)
	if r.providerSetCount > 1 && !r.customMeterProvider {
		errs = append(errs, ErrConflictingProviders)
	}
	if r.serviceName == "" {
		errs = append(errs, errors.New("service name cannot be empty"))
	}
	if r.exportInterval <= 0 {
		errs = append(errs, fmt.Errorf("export interval must be positive, got %s", r.exportInterval))
	}

	return errors.Join(errs...)
}

func (r *Recorder) initializeInstruments(meter metric.Meter) error {
	var err error

	if r.transitions, err = meter.Int64Counter("navigation.transitions",
		metric.WithDescription("Resolutions by lifecycle branch and outcome"),
	); err != nil {
		return fmt.Errorf("create transitions counter: %w", err)
	}

	if r.duration, err = meter.Float64Histogram("navigation.transition.duration",
		metric.WithDescription("Time spent resolving and draining a transition"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	); err != nil {
		return fmt.Errorf("create duration histogram: %w", err)
	}

	if r.handlers, err = meter.Int64Counter("navigation.handlers",
		metric.WithDescription("Lifecycle handlers queued by transitions"),
	); err != nil {
		return fmt.Errorf("create handlers counter: %w", err)
	}

	if r.superseded, err = meter.Int64Counter("navigation.superseded",
		metric.WithDescription("Queued callbacks discarded by a newer resolution"),
	); err != nil {
		return fmt.Errorf("create superseded counter: %w", err)
	}

	if r.diagnostics, err = meter.Int64Counter("navigation.diagnostics",
		metric.WithDescription("Router diagnostic events by kind"),
	); err != nil {
		return fmt.Errorf("create diagnostics counter: %w", err)
	}

	r.serviceAttrs = []attribute.KeyValue{
		attribute.String(semconv.ServiceName, r.serviceName),
		attribute.String(semconv.ServiceVersion, r.serviceVersion),
	}

	return nil
}

// Handler returns the Prometheus scrape handler.
func (r *Recorder) Handler() (http.Handler, error) {
	if r.prometheusHandler == nil {
		return nil, fmt.Errorf("%w, current provider: %s", ErrNoHandler, r.Provider())
	}

	return r.prometheusHandler, nil
}

// Provider returns the configured provider, or "" for a custom meter provider.
func (r *Recorder) Provider() Provider {
	if r.customMeterProvider {
		return ""
	}

	return r.provider
}

// ServiceName returns the service name.
func (r *Recorder) ServiceName() string {
	return r.serviceName
}

// ServiceVersion returns the service version.
func (r *Recorder) ServiceVersion() string {
	return r.serviceVersion
}

// ForceFlush exports pending data of push-based providers.
func (r *Recorder) ForceFlush(ctx context.Context) error {
	if r.shutdown.Load() {
		return nil
	}
	if mp, ok := r.meterProvider.(*sdkmetric.MeterProvider); ok && !r.customMeterProvider {
		if err := mp.ForceFlush(ctx); err != nil {
			return fmt.Errorf("metrics force flush: %w", err)
		}
	}

	return nil
}

// Shutdown flushes and stops the meter provider. Custom meter providers
// are left to their owner. Calling Shutdown again does nothing.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if !r.shutdown.CompareAndSwap(false, true) {
		return nil
	}

	mp, ok := r.meterProvider.(*sdkmetric.MeterProvider)
	if !ok || r.customMeterProvider {
		return nil
	}

	if err := mp.ForceFlush(ctx); err != nil {
		r.emitWarning("metrics flush warning", "error", err)
	}
	if err := mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("meter provider shutdown: %w", err)
	}
	r.emitDebug("Meter provider shut down")

	return nil
}

func (r *Recorder) emitError(msg string, args ...any) {
	r.eventHandler(Event{Type: EventError, Message: msg, Args: args})
}

func (r *Recorder) emitWarning(msg string, args ...any) {
	r.eventHandler(Event{Type: EventWarning, Message: msg, Args: args})
}

func (r *Recorder) emitDebug(msg string, args ...any) {
	r.eventHandler(Event{Type: EventDebug, Message: msg, Args: args})
}
