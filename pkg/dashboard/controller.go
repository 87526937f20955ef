// Package dashboard loads the backend data and keeps the page's charts,
// panels and benchmark table in step with it.
package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/logger"
	"github.com/raykavin/folioview/pkg/plot"
	"github.com/raykavin/folioview/pkg/plot/series"
	"github.com/raykavin/folioview/pkg/table"
	"golang.org/x/sync/errgroup"
)

const (
	evolutionErrorPrefix = "Error loading charts: "
	benchmarkErrorPrefix = "Error loading benchmarks: "
)

// Fetcher is the backend the controller loads from.
type Fetcher interface {
	Evolution(ctx context.Context, frequency core.Frequency) (core.Evolution, error)
	Benchmarks(ctx context.Context) (core.BenchmarkComparison, error)
}

// flow serialises the rendering of one load flow and tracks the latest
// trigger, so a superseded response is dropped instead of rendered.
type flow struct {
	mu         sync.Mutex
	generation atomic.Uint64
}

// start registers a new trigger and runs onStart under the render lock,
// so a render already in progress cannot undo it.
func (f *flow) start(onStart func()) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	gen := f.generation.Add(1)
	if onStart != nil {
		onStart()
	}
	return gen
}

func (f *flow) superseded(gen uint64) bool {
	return f.generation.Load() != gen
}

// Controller runs the evolution and benchmark load flows against a page
type Controller struct {
	page     *Page
	fetcher  Fetcher
	library  plot.Library
	registry *plot.Registry
	charts   *series.Builder
	table    *table.Renderer
	log      logger.Logger

	evolution  flow
	benchmarks flow
}

// Option defines a function type for configuring a Controller
type Option func(*Controller)

// WithRegistry shares an existing chart registry
func WithRegistry(registry *plot.Registry) Option {
	return func(c *Controller) {
		c.registry = registry
	}
}

// WithChartSettings sets the currency and height used by every chart
func WithChartSettings(settings core.ChartSettings) Option {
	return func(c *Controller) {
		c.charts = series.New(settings)
	}
}

// NewController creates a controller drawing on the page's canvases
// through library.
func NewController(page *Page, fetcher Fetcher, library plot.Library, log logger.Logger, options ...Option) *Controller {
	c := &Controller{
		page:     page,
		fetcher:  fetcher,
		library:  library,
		registry: plot.NewRegistry(),
		charts:   series.New(core.DefaultSettings().Chart),
		table:    table.NewRenderer(log),
		log:      log,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Registry returns the registry owning the controller's charts.
func (c *Controller) Registry() *plot.Registry {
	return c.registry
}

// Page returns the controlled page.
func (c *Controller) Page() *Page {
	return c.page
}

// Mount runs both load flows concurrently, as on page load. Neither flow
// waits for or cancels the other; the first error is returned.
func (c *Controller) Mount(ctx context.Context, frequency core.Frequency) error {
	var g errgroup.Group
	g.Go(func() error { return c.LoadEvolution(ctx, frequency) })
	g.Go(func() error { return c.LoadBenchmarks(ctx) })
	return g.Wait()
}

// LoadEvolution fetches the evolution series and redraws the five
// evolution charts. Failures are shown in the error panel and returned for
// logging only.
func (c *Controller) LoadEvolution(ctx context.Context, frequency core.Frequency) error {
	gen := c.evolution.start(c.page.Loading.Show)
	log := c.log.WithFields(map[string]any{
		"flow":       "evolution",
		"frequency":  frequency.String(),
		"generation": gen,
	})

	evo, err := c.fetcher.Evolution(ctx, frequency)
	if err == nil {
		err = evo.Validate()
	}

	c.evolution.mu.Lock()
	defer c.evolution.mu.Unlock()

	if c.evolution.superseded(gen) {
		log.Warn("discarding superseded evolution response")
		return nil
	}

	if err != nil {
		c.failEvolution(log, err)
		return err
	}

	c.page.Loading.Hide()
	c.page.Error.Hide()

	if err := c.registry.Dispose(EvolutionSlots...); err != nil {
		log.WithError(err).Warn("failed to dispose previous charts")
	}

	builds := map[plot.Slot]series.EvolutionChart{
		SlotPortfolioValue: c.charts.PortfolioValue,
		SlotReturns:        c.charts.Returns,
		SlotLeverage:       c.charts.Leverage,
		SlotCashFlow:       c.charts.CashFlow,
		SlotProfitLoss:     c.charts.ProfitLoss,
	}

	for _, slot := range EvolutionSlots {
		build, target := builds[slot], c.page.Canvases[slot]
		err := c.registry.Replace(slot, func() (plot.Handle, error) {
			return build(c.library, target, evo)
		})
		if err != nil {
			if err := c.registry.Dispose(EvolutionSlots...); err != nil {
				log.WithError(err).Warn("failed to dispose partial charts")
			}
			c.page.Charts.Hide()
			c.failEvolution(log, err)
			return err
		}
	}

	c.page.Charts.Show()
	log.Infof("rendered %d evolution charts over %d labels", len(EvolutionSlots), len(evo.Labels))
	return nil
}

func (c *Controller) failEvolution(log logger.Logger, err error) {
	c.page.Loading.Hide()
	c.page.Error.Show()
	c.page.Error.SetText(evolutionErrorPrefix + message(err))
	log.WithError(err).Error("failed to load evolution charts")
}

// LoadBenchmarks fetches the benchmark comparison, redraws the benchmark
// chart and fills the table. Failures go to the benchmark error panel when
// the page has one.
func (c *Controller) LoadBenchmarks(ctx context.Context) error {
	gen := c.benchmarks.start(nil)
	log := c.log.WithFields(map[string]any{
		"flow":       "benchmarks",
		"generation": gen,
	})

	cmp, err := c.fetcher.Benchmarks(ctx)
	if err == nil {
		err = cmp.Validate()
	}

	c.benchmarks.mu.Lock()
	defer c.benchmarks.mu.Unlock()

	if c.benchmarks.superseded(gen) {
		log.Warn("discarding superseded benchmark response")
		return nil
	}

	if err == nil {
		target := c.page.Canvases[SlotBenchmark]
		err = c.registry.Replace(SlotBenchmark, func() (plot.Handle, error) {
			return c.charts.Benchmark(c.library, target, cmp)
		})
	}

	if err != nil {
		if panel := c.page.BenchmarkError; panel != nil {
			panel.Show()
			panel.SetText(benchmarkErrorPrefix + message(err))
		}
		log.WithError(err).Error("failed to load benchmarks")
		return err
	}

	if panel := c.page.BenchmarkError; panel != nil {
		panel.Hide()
	}

	c.table.Render(c.page.BenchmarkTable, cmp.AnnualReturns)
	log.Debugf("benchmark chart rendered with %d labels", len(cmp.Labels))
	return nil
}

// Close destroys every chart the controller owns.
func (c *Controller) Close() error {
	return c.registry.Close()
}

// message is the text shown to the user: the backend's own message for
// application errors, the full chain otherwise.
func message(err error) string {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
