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
	"fmt"
	"strings"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func (r *Recorder) initializeProvider() error {
	if !r.customMeterProvider {
		var (
			reader sdkmetric.Reader
			err    error
		)
		switch r.provider {
		case PrometheusProvider:
			reader, err = r.prometheusReader()
		case OTLPProvider:
			reader, err = r.otlpReader()
		case StdoutProvider:
			reader, err = r.stdoutReader()
		default:
			err = fmt.Errorf("unsupported metrics provider: %s", r.provider)
		}
		if err != nil {
			return err
		}
		r.meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	}

	if r.registerGlobal {
		r.emitDebug("Setting global OpenTelemetry meter provider", "provider", string(r.provider))
		otel.SetMeterProvider(r.meterProvider)
	}

	return r.initializeInstruments(r.meterProvider.Meter(ScopeName))
}

func (r *Recorder) prometheusReader() (sdkmetric.Reader, error) {
	r.prometheusRegistry = promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(r.prometheusRegistry))
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	r.prometheusHandler = promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{})

	return exporter, nil
}

func (r *Recorder) otlpReader() (sdkmetric.Reader, error) {
	var opts []otlpmetrichttp.Option
	if r.otlpEndpoint != "" {
		endpoint, insecure := splitEndpoint(r.otlpEndpoint)
		opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(r.exportInterval)), nil
}

func (r *Recorder) stdoutReader() (sdkmetric.Reader, error) {
	exporter, err := stdoutmetric.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(r.exportInterval)), nil
}

// splitEndpoint strips the scheme and path of an OTLP endpoint URL and
// reports whether it used plain http.
func splitEndpoint(endpoint string) (hostport string, insecure bool) {
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		endpoint, insecure = strings.TrimPrefix(endpoint, "http://"), true
	case strings.HasPrefix(endpoint, "https://"):
		endpoint = strings.TrimPrefix(endpoint, "https://")
	}
	if i := strings.IndexByte(endpoint, '/'); i != -1 {
		endpoint = endpoint[:i]
	}

	return endpoint, insecure
}
