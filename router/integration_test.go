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

//go:build integration

package router_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"rivaas.dev/navigation/browser"
	"rivaas.dev/navigation/browser/memory"
	"rivaas.dev/navigation/metrics"
	"rivaas.dev/navigation/route"
	"rivaas.dev/navigation/router"
	"rivaas.dev/navigation/tracing"
)

func counter(reader *sdkmetric.ManualReader, name string) int64 {
	var rm metricdata.ResourceMetrics
	Expect(reader.Collect(context.Background(), &rm)).To(Succeed())

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			Expect(ok).To(BeTrue())
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

var _ = Describe("Router Integration", func() {
	var (
		win    *memory.Window
		r      *router.Router
		reader *sdkmetric.ManualReader
		spans  *tracetest.SpanRecorder
		events []string
	)

	record := func(name string) route.Callback {
		return func(_, next *route.Args, _ route.ScrollFunc) {
			events = append(events, name+" "+next.URL.Path)
		}
	}

	BeforeEach(func() {
		events = nil
		win = memory.MustNew("https://app.example/")

		reader = sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		DeferCleanup(mp.Shutdown, context.Background())
		rec, err := metrics.New(metrics.WithMeterProvider(mp))
		Expect(err).NotTo(HaveOccurred())

		spans = tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
		DeferCleanup(tp.Shutdown, context.Background())
		tr, err := tracing.New(tracing.WithTracerProvider(tp))
		Expect(err).NotTo(HaveOccurred())

		r = router.MustNew(
			router.WithWindow(win),
			router.WithObservability(rec, tr),
			router.WithDiagnostics(rec.Diagnostics()),
		)

		r.Route("/", func() {
			r.Enter(record("enter"))
			r.Leave(record("leave"))
		})
		r.Route("/docs/:page", func() {
			r.Meta(map[string]any{"section": "docs"})
			r.Enter(record("enter"))
			r.Update(record("update"))
			r.Leave(record("leave"))
		})
	})

	Describe("Listening to the window", func() {
		It("resolves the current location once", func() {
			r.Listen()
			r.Listen()

			Expect(events).To(Equal([]string{"enter /"}))
			Expect(win.ScrollRestoration()).To(Equal(browser.ScrollRestorationManual))
		})

		It("turns internal link clicks into navigations", func() {
			r.Listen()

			prevented := win.Click(&browser.ClickEvent{Anchor: &browser.Anchor{Href: "/docs/intro"}})

			Expect(prevented).To(BeTrue())
			Expect(win.Len()).To(Equal(2))
			Expect(win.URL().Path).To(Equal("/docs/intro"))
			Expect(r.Current().Path).To(Equal("/docs/:page"))
			Expect(events).To(Equal([]string{"enter /", "leave /docs/intro", "enter /docs/intro"}))
		})

		It("leaves modified, external and new-tab clicks to the browser", func() {
			r.Listen()

			Expect(win.Click(&browser.ClickEvent{MetaKey: true, Anchor: &browser.Anchor{Href: "/docs/a"}})).To(BeFalse())
			Expect(win.Click(&browser.ClickEvent{Anchor: &browser.Anchor{Href: "https://elsewhere.example/"}})).To(BeFalse())
			Expect(win.Click(&browser.ClickEvent{Anchor: &browser.Anchor{Href: "/docs/a", Target: "_blank"}})).To(BeFalse())
			Expect(win.Click(&browser.ClickEvent{Button: 1, Anchor: &browser.Anchor{Href: "/docs/a"}})).To(BeFalse())
			Expect(win.Len()).To(Equal(1))
		})

		It("restores the saved scroll position on back", func() {
			r.Listen()

			win.UserScroll(browser.Position{Y: 300})
			win.Advance(100 * time.Millisecond)
			Expect(win.Pending()).To(BeZero())

			win.Click(&browser.ClickEvent{Anchor: &browser.Anchor{Href: "/docs/intro"}})
			Expect(win.ScrollPosition()).To(Equal(browser.Position{}))

			Expect(win.Back()).To(Succeed())
			Expect(r.Current().Path).To(Equal("/"))
			Expect(win.ScrollPosition()).To(Equal(browser.Position{Y: 300}))
		})

		It("runs update handlers when only parameters change", func() {
			r.Listen()
			r.Navigate("/docs/a", nil)
			r.Navigate("/docs/b", nil)

			Expect(events).To(HaveExactElements("enter /", "leave /docs/a", "enter /docs/a", "update /docs/b"))
		})
	})

	Describe("Pausing transitions", func() {
		It("holds remaining callbacks until resumed", func() {
			r.Route("/checkout", func() {
				r.Before(func(_, _ *route.Args, _ route.ScrollFunc) { r.Pause() })
				r.Enter(record("enter"))
			})

			var done bool
			r.Resolve("https://app.example/checkout", func(_, _ *route.Args, _ route.ScrollFunc) { done = true })

			Expect(r.Paused()).To(BeTrue())
			Expect(r.Current().Path).To(Equal("/checkout"))
			Expect(done).To(BeFalse())

			r.Resume()
			Expect(done).To(BeTrue())
			Expect(events).To(Equal([]string{"enter /checkout"}))
		})

		It("discards a paused transition when another one starts", func() {
			r.Route("/checkout", func() {
				r.Before(func(_, _ *route.Args, _ route.ScrollFunc) { r.Pause() })
				r.Enter(record("enter"))
			})

			r.Resolve("https://app.example/checkout", nil)
			r.Resolve("https://app.example/docs/faq", nil)

			Expect(r.Paused()).To(BeFalse())
			Expect(events).To(Equal([]string{"enter /docs/faq"}))
			Expect(counter(reader, "navigation.superseded")).To(BeNumerically(">", 0))
		})
	})

	Describe("Observability", func() {
		It("records one span and one count per resolution", func() {
			r.Resolve("https://app.example/", nil)
			r.Resolve("https://app.example/missing", nil)

			Expect(counter(reader, "navigation.transitions")).To(Equal(int64(2)))
			Expect(counter(reader, "navigation.diagnostics")).To(BeNumerically(">=", 1))

			ended := spans.Ended()
			Expect(ended).To(HaveLen(2))
			Expect(ended[0].Name()).To(Equal("navigate /"))
			Expect(ended[1].Name()).To(Equal("navigate"))
		})
	})
})
