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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"rivaas.dev/navigation/browser/memory"
	"rivaas.dev/navigation/config"
	"rivaas.dev/navigation/logging"
	"rivaas.dev/navigation/metrics"
	"rivaas.dev/navigation/router"
	"rivaas.dev/navigation/tracing"
)

const defaultBaseURL = "http://localhost/"

var errNoManifest = errors.New("no manifest given (use -f)")

// cli holds the persistent flags shared by every command.
type cli struct {
	manifests []string
	envPrefix string
	baseURL   string
	idFormat  string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "navctl",
		Short: "Inspect and test navigation route manifests",
		Long: `navctl loads route manifests (YAML, JSON or TOML) and runs them
through the navigation router without a browser.

Several -f flags are merged in order, and environment variables with the
--env-prefix override manifest settings (NAV_LOGGING__LEVEL=debug sets
logging.level).

Examples:
  navctl -f routes.yaml routes              # List declared routes
  navctl -f routes.yaml resolve /posts/hi   # Show which route handles a path
  navctl -f routes.yaml validate            # Check a manifest
  navctl -f routes.yaml export -o out.json  # Write the merged manifest`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&c.manifests, "manifest", "f", nil, "Manifest file (repeatable, merged in order)")
	flags.StringVar(&c.envPrefix, "env-prefix", "NAV_", "Environment variable prefix (empty disables)")
	flags.StringVar(&c.baseURL, "base-url", "", "Base URL locations resolve against (default: manifest router.base_url)")
	flags.StringVar(&c.idFormat, "id-format", "uuid", "Transition ID format: uuid or ulid")

	cmd.AddCommand(
		routesCmd(c),
		resolveCmd(c),
		validateCmd(c),
		exportCmd(c),
		versionCmd(),
	)

	return cmd
}

// sources returns the config options reading every manifest file and the
// environment.
func (c *cli) sources() ([]config.Option, error) {
	if len(c.manifests) == 0 {
		return nil, errNoManifest
	}

	opts := make([]config.Option, 0, len(c.manifests)+1)
	for _, path := range c.manifests {
		opts = append(opts, config.WithFile(path))
	}
	if c.envPrefix != "" {
		opts = append(opts, config.WithEnv(c.envPrefix))
	}

	return opts, nil
}

func (c *cli) load(ctx context.Context) (*config.Manifest, error) {
	opts, err := c.sources()
	if err != nil {
		return nil, err
	}

	return config.LoadManifest(ctx, opts...)
}

// session is a router built from a manifest plus the observability it
// owns.
type session struct {
	router   *router.Router
	window   *memory.Window
	base     string
	closers  []func(context.Context) error
	manifest *config.Manifest
}

func (s *session) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}

	return errors.Join(errs...)
}

// open loads the manifest and declares it on a router backed by an
// in-memory window. Logs go to logOut.
func (c *cli) open(ctx context.Context, logOut io.Writer, extra ...router.Option) (*session, error) {
	m, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	base := c.baseURL
	if base == "" {
		base = m.Router.BaseURL
	}
	if base == "" {
		base = defaultBaseURL
	}
	win, err := memory.New(base)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	logOpts, err := m.Logging.Options()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(append(logOpts,
		logging.WithOutput(logOut),
		logging.WithServiceName(m.Observability.ServiceName),
		logging.WithServiceVersion(m.Observability.ServiceVersion),
	)...)
	if err != nil {
		return nil, err
	}

	s := &session{window: win, base: base, manifest: m}
	s.closers = append(s.closers, logger.Shutdown)

	opts := append(m.RouterOptions(), router.WithWindow(win), router.WithLogger(logger.Logger()))
	switch c.idFormat {
	case "uuid":
	case "ulid":
		opts = append(opts, router.WithTransitionIDs(func() string { return ulid.Make().String() }))
	default:
		return nil, errors.Join(fmt.Errorf("unknown id format %q", c.idFormat), s.Close(ctx))
	}

	var recorders []router.ObservabilityRecorder
	if m.Observability.MetricsEnabled() {
		rec, err := metrics.New(append(m.Observability.MetricsOptions(), metrics.WithLogger(logger.Logger()))...)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("metrics: %w", err), s.Close(ctx))
		}
		s.closers = append(s.closers, rec.Shutdown)
		recorders = append(recorders, rec)
		opts = append(opts, router.WithDiagnostics(rec.Diagnostics()))
	}
	if m.Observability.TracingEnabled() {
		tr, err := tracing.New(append(m.Observability.TracingOptions(), tracing.WithLogger(logger.Logger()))...)
		if err == nil {
			err = tr.Start(ctx)
		}
		if err != nil {
			return nil, errors.Join(fmt.Errorf("tracing: %w", err), s.Close(ctx))
		}
		s.closers = append(s.closers, tr.Shutdown)
		recorders = append(recorders, tr)
	}
	if len(recorders) > 0 {
		opts = append(opts, router.WithObservability(recorders...))
	}
	opts = append(opts, extra...)

	r, err := router.New(opts...)
	if err != nil {
		return nil, errors.Join(err, s.Close(ctx))
	}
	if err := m.Apply(r); err != nil {
		return nil, errors.Join(err, s.Close(ctx))
	}
	s.router = r

	return s, nil
}

// styles renders through a renderer bound to the output, so colors are
// dropped when the output is not a terminal.
type styles struct {
	title  lipgloss.Style
	key    lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	ok     lipgloss.Style
	failed lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		key:    r.NewStyle().Foreground(lipgloss.Color("245")).Width(9),
		value:  r.NewStyle().Foreground(lipgloss.Color("15")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("240")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("10")),
		failed: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func errorStyle(w io.Writer) lipgloss.Style {
	return newStyles(w).failed.Bold(true)
}
