package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// BenchmarkColors is the fixed colour of each tracked index.
var BenchmarkColors = map[core.Benchmark]plot.Color{
	core.SP500:       plot.Orange,
	core.Nasdaq100:   plot.Violet,
	core.MSCIWorld:   plot.Teal,
	core.EuroStoxx50: plot.Amber,
}

// BenchmarkConfig draws the portfolio's rebased series first, heavier and
// unfilled, followed by every benchmark present in the payload.
func (b *Builder) BenchmarkConfig(cmp core.BenchmarkComparison) plot.Config {
	portfolio := line("Portfolio", cmp.Portfolio(), plot.Blue)
	portfolio.BorderWidth = 3

	datasets := []plot.Dataset{portfolio}
	for _, bench := range core.Benchmarks {
		values, ok := cmp.Series(bench)
		if !ok {
			continue
		}
		datasets = append(datasets, line(bench.String(), values, BenchmarkColors[bench]))
	}

	axis := plot.ValueAxis(false, plot.ValueFormat{Decimals: 0})
	axis.Title = &plot.AxisTitle{Display: true, Text: "Index (100 = start)"}

	return b.config(cmp.Labels, datasets,
		plot.WithScale("y", axis),
		plot.WithScale("x", plot.LabelAxis()),
		plot.WithTooltipLabel(plot.ValueFormat{Decimals: 2}),
		plot.WithLegendToggle(),
	)
}

// Benchmark renders the benchmark comparison chart on target.
func (b *Builder) Benchmark(lib plot.Library, target plot.Target, cmp core.BenchmarkComparison) (plot.Handle, error) {
	return render(lib, target, b.BenchmarkConfig(cmp))
}
