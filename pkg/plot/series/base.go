// Package series maps the dashboard's data series to chart configurations,
// one constructor per chart.
package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/format"
	"github.com/raykavin/folioview/pkg/plot"
)

// Builder creates chart configurations and live charts that share one set
// of presentation settings.
type Builder struct {
	currency string
	height   int
}

// New creates a Builder; the currency code is resolved to its symbol once.
func New(settings core.ChartSettings) *Builder {
	return &Builder{
		currency: format.Symbol(settings.Currency),
		height:   settings.Height,
	}
}

// EvolutionChart builds a live chart for one evolution slot.
type EvolutionChart func(lib plot.Library, target plot.Target, evo core.Evolution) (plot.Handle, error)

// line creates the standard smoothed dataset without point markers.
func line(label string, values core.Series, color plot.Color) plot.Dataset {
	return plot.Dataset{
		Label:            label,
		Data:             plot.Values(values),
		BorderColor:      color,
		BackgroundColor:  plot.Transparent,
		BorderWidth:      2,
		Tension:          0.4,
		PointRadius:      0,
		PointHoverRadius: 6,
	}
}

// area is a line filled with a translucent version of its colour.
func area(label string, values core.Series, color plot.Color) plot.Dataset {
	ds := line(label, values, color)
	ds.BackgroundColor = color.Alpha(0.1)
	ds.BorderWidth = 3
	ds.Fill = true
	return ds
}

func (b *Builder) money(decimals int) plot.ValueFormat {
	return plot.ValueFormat{Decimals: decimals, Suffix: " " + b.currency}
}

func (b *Builder) config(labels []string, datasets []plot.Dataset, overrides ...plot.OptionFunc) plot.Config {
	overrides = append([]plot.OptionFunc{plot.WithHeight(b.height)}, overrides...)
	return plot.Config{
		Type: plot.ChartLine,
		Data: plot.Data{
			Labels:   labels,
			Datasets: datasets,
		},
		Options: plot.NewOptions(overrides...),
	}
}

func render(lib plot.Library, target plot.Target, cfg plot.Config) (plot.Handle, error) {
	return lib.New(target, cfg)
}
