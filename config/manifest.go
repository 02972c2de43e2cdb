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

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/navigation/logging"
	"rivaas.dev/navigation/merge"
	"rivaas.dev/navigation/metrics"
	"rivaas.dev/navigation/route"
	"rivaas.dev/navigation/router"
	"rivaas.dev/navigation/tracing"
)

// ManifestSchema is the JSON schema every manifest is checked against.
//
//go:embed manifest.schema.json
var ManifestSchema []byte

// Manifest declares router settings, shared data and routes.
type Manifest struct {
	Router        RouterSettings        `config:"router"`
	Logging       LoggingSettings       `config:"logging"`
	Observability ObservabilitySettings `config:"observability"`
	Meta          map[string]any        `config:"meta"`
	Matches       map[string]any        `config:"matches"`
	Groups        []GroupSpec           `config:"groups" validate:"dive"`
	Routes        []RouteSpec           `config:"routes" validate:"dive"`
}

// RouterSettings configures the router itself.
type RouterSettings struct {
	// BaseURL is the location offline tools resolve against.
	BaseURL        string        `config:"base_url" validate:"omitempty,url"`
	ScrollDebounce time.Duration `config:"scroll_debounce" validate:"gte=0"`
}

// LoggingSettings configures the logging package.
type LoggingSettings struct {
	Level  string `config:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `config:"format" default:"json" validate:"oneof=json text console"`
}

// ObservabilitySettings selects metrics and tracing providers.
type ObservabilitySettings struct {
	ServiceName     string   `config:"service_name" default:"navigation" validate:"required"`
	ServiceVersion  string   `config:"service_version" default:"1.0.0" validate:"required"`
	Metrics         string   `config:"metrics" default:"none" validate:"oneof=none prometheus otlp stdout"`
	MetricsEndpoint string   `config:"metrics_endpoint"`
	Tracing         string   `config:"tracing" default:"none" validate:"oneof=none noop stdout otlp otlp-http"`
	TracingEndpoint string   `config:"tracing_endpoint"`
	SampleRate      *float64 `config:"sample_rate" validate:"omitempty,gte=0,lte=1"`
}

// GroupSpec is a group of routes sharing meta and matches.
type GroupSpec struct {
	Meta    map[string]any `config:"meta"`
	Matches map[string]any `config:"matches"`
	Routes  []RouteSpec    `config:"routes" validate:"dive"`
}

// RouteSpec declares one route. Matches values are regular expressions or
// lists of allowed literal values.
type RouteSpec struct {
	Path        string         `config:"path" validate:"required"`
	Meta        map[string]any `config:"meta"`
	ReplaceMeta bool           `config:"replace_meta"`
	Matches     map[string]any `config:"matches"`
}

// RouteFunc is called inside each route declaration, so callers can attach
// handlers to routes the manifest declared.
type RouteFunc func(path string)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadManifest reads a manifest from the given sources. Later sources
// override earlier ones; WithEnv("NAV_") lets the environment override
// settings. Validation failures wrap ErrManifestInvalid.
func LoadManifest(ctx context.Context, opts ...Option) (*Manifest, error) {
	var m Manifest

	all := make([]Option, 0, len(opts)+3)
	all = append(all, WithPreserveCase(), WithJSONSchema(ManifestSchema))
	all = append(all, opts...)
	all = append(all, WithBinding(&m))

	cfg, err := New(all...)
	if err != nil {
		return nil, err
	}
	if err = cfg.Load(ctx); err != nil {
		var cerr *Error
		if errors.As(err, &cerr) && cerr.Operation == "validate" && !errors.Is(err, ErrManifestInvalid) {
			return nil, fmt.Errorf("%w: %w", ErrManifestInvalid, err)
		}
		return nil, err
	}

	return &m, nil
}

// Validate checks struct rules and compiles every route pattern with the
// validators it inherits.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %w", ErrManifestInvalid, err)
	}

	var errs []error
	base, err := validators(m.Matches)
	if err != nil {
		errs = append(errs, NewFieldError("manifest", "matches", "validate", err))
	}

	check := func(where string, scope map[string]any, spec RouteSpec) {
		own, err := validators(spec.Matches)
		if err != nil {
			errs = append(errs, NewFieldError(where, "matches", "validate", err))
			return
		}
		matches := merge.Merge(merge.FromMap(scope), merge.FromMap(own))
		if _, err := route.Compile(route.Normalize(spec.Path), matches); err != nil {
			errs = append(errs, NewFieldError(where, "path", "compile", err))
		}
	}

	for i, g := range m.Groups {
		group, err := validators(g.Matches)
		if err != nil {
			errs = append(errs, NewFieldError(fmt.Sprintf("groups[%d]", i), "matches", "validate", err))
			continue
		}
		scope := merge.Merge(merge.FromMap(base), merge.FromMap(group)).Plain()
		for j, spec := range g.Routes {
			check(fmt.Sprintf("groups[%d].routes[%d]", i, j), scope, spec)
		}
	}
	for i, spec := range m.Routes {
		check(fmt.Sprintf("routes[%d]", i), base, spec)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrManifestInvalid, errors.Join(errs...))
	}

	return nil
}

// validators converts manifest matches into router validators: strings
// stay patterns and lists become alternations of literal values.
func validators(matches map[string]any) (map[string]any, error) {
	if len(matches) == 0 {
		return nil, nil
	}

	out := make(map[string]any, len(matches))
	for name, v := range matches {
		switch val := v.(type) {
		case string:
			out[name] = val
		case []any:
			values := make([]string, 0, len(val))
			for _, item := range val {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("match %q: list values must be strings, got %T", name, item)
				}
				values = append(values, s)
			}
			out[name] = route.Enum(values...)
		case []string:
			out[name] = route.Enum(val...)
		default:
			return nil, fmt.Errorf("match %q: unsupported validator %T", name, v)
		}
	}

	return out, nil
}

// Apply declares the manifest on r: instance meta and matches, then each
// group with its routes, then top-level routes. fns run inside every route
// declaration in order.
//
// The manifest is validated first; on failure nothing is declared and the
// error wraps [ErrManifestInvalid].
func (m *Manifest) Apply(r *router.Router, fns ...RouteFunc) error {
	if err := m.Validate(); err != nil {
		return err
	}

	// Validate converted every matches block, so the errors below are nil.
	if len(m.Meta) > 0 {
		r.Meta(m.Meta)
	}
	if v, _ := validators(m.Matches); len(v) > 0 {
		r.Match(v)
	}

	for _, g := range m.Groups {
		r.Group(func() {
			if len(g.Meta) > 0 {
				r.Meta(g.Meta)
			}
			if v, _ := validators(g.Matches); len(v) > 0 {
				r.Match(v)
			}
			for _, spec := range g.Routes {
				declare(r, spec, fns)
			}
		})
	}

	for _, spec := range m.Routes {
		declare(r, spec, fns)
	}

	return nil
}

func declare(r *router.Router, spec RouteSpec, fns []RouteFunc) {
	r.Route(spec.Path, func() {
		if len(spec.Meta) > 0 || spec.ReplaceMeta {
			var opts []router.DataOption
			if spec.ReplaceMeta {
				opts = append(opts, router.Replace())
			}
			r.Meta(spec.Meta, opts...)
		}
		if v, _ := validators(spec.Matches); len(v) > 0 {
			r.Match(v)
		}
		for _, fn := range fns {
			fn(spec.Path)
		}
	})
}

// RouterOptions returns router options for the manifest's router settings.
func (m *Manifest) RouterOptions() []router.Option {
	var opts []router.Option
	if m.Router.ScrollDebounce > 0 {
		opts = append(opts, router.WithScrollDebounce(m.Router.ScrollDebounce))
	}

	return opts
}

// Options returns logging options for the settings.
func (s LoggingSettings) Options() ([]logging.Option, error) {
	level, err := logging.ParseLevel(s.Level)
	if err != nil {
		return nil, NewFieldError("logging", "level", "parse", err)
	}

	opts := []logging.Option{logging.WithLevel(level)}
	if s.Format != "" {
		opts = append(opts, logging.WithHandlerType(logging.HandlerType(s.Format)))
	}

	return opts, nil
}

// MetricsEnabled reports whether a metrics provider is selected.
func (s ObservabilitySettings) MetricsEnabled() bool {
	return s.Metrics != "" && s.Metrics != "none"
}

// MetricsOptions returns metrics options for the selected provider.
func (s ObservabilitySettings) MetricsOptions() []metrics.Option {
	opts := []metrics.Option{
		metrics.WithServiceName(s.ServiceName),
		metrics.WithServiceVersion(s.ServiceVersion),
	}
	switch metrics.Provider(s.Metrics) {
	case metrics.PrometheusProvider:
		opts = append(opts, metrics.WithPrometheus())
	case metrics.OTLPProvider:
		opts = append(opts, metrics.WithOTLP(s.MetricsEndpoint))
	case metrics.StdoutProvider:
		opts = append(opts, metrics.WithStdout())
	}

	return opts
}

// TracingEnabled reports whether a tracing provider is selected.
func (s ObservabilitySettings) TracingEnabled() bool {
	return s.Tracing != "" && s.Tracing != "none"
}

// TracingOptions returns tracing options for the selected provider.
func (s ObservabilitySettings) TracingOptions() []tracing.Option {
	opts := []tracing.Option{
		tracing.WithServiceName(s.ServiceName),
		tracing.WithServiceVersion(s.ServiceVersion),
	}
	if s.SampleRate != nil {
		opts = append(opts, tracing.WithSampleRate(*s.SampleRate))
	}
	switch tracing.Provider(s.Tracing) {
	case tracing.NoopProvider:
		opts = append(opts, tracing.WithNoop())
	case tracing.StdoutProvider:
		opts = append(opts, tracing.WithStdout())
	case tracing.OTLPProvider:
		opts = append(opts, tracing.WithOTLP(s.TracingEndpoint))
	case tracing.OTLPHTTPProvider:
		opts = append(opts, tracing.WithOTLPHTTP(s.TracingEndpoint))
	}

	return opts
}
