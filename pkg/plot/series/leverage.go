package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// LeverageConfig draws the cash balance: non-negative stretches are cash
// (green), negative ones leverage (red). Segments take the sign of their
// ending point; markers take their own.
func (b *Builder) LeverageConfig(evo core.Evolution) plot.Config {
	values := evo.Datasets.Leverage

	ds := line("Leverage / Cash", values, plot.SignColor(values.LastOr(0)))
	ds.BorderWidth = 3
	ds.PointRadius = 2
	ds.SegmentColors = plot.SegmentColors(values)
	ds.PointColors = plot.PointColors(values)

	label := b.money(2)
	label.Absolute = true
	label.NonNegativeLabel = "Cash"
	label.NegativeLabel = "Leverage"

	return b.config(evo.Labels, []plot.Dataset{ds},
		plot.WithScale("y", plot.ValueAxis(false, b.money(0))),
		plot.WithScale("x", plot.LabelAxis()),
		plot.WithTooltipLabel(label),
	)
}

// Leverage renders the leverage/cash chart on target.
func (b *Builder) Leverage(lib plot.Library, target plot.Target, evo core.Evolution) (plot.Handle, error) {
	return render(lib, target, b.LeverageConfig(evo))
}
