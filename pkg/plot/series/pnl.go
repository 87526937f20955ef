package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// ProfitLossConfig draws accumulated P&L with the same sign-of-endpoint
// colouring as the leverage chart, applied to both stroke and fill.
func (b *Builder) ProfitLossConfig(evo core.Evolution) plot.Config {
	values := evo.Datasets.PLAccumulated
	last := plot.SignColor(values.LastOr(0))

	ds := area("Accumulated P&L", values, last)
	ds.SegmentColors = plot.SegmentColors(values)
	ds.SegmentFills = make([]plot.Color, len(ds.SegmentColors))
	for i, c := range ds.SegmentColors {
		if c != plot.Transparent {
			c = c.Alpha(0.1)
		}
		ds.SegmentFills[i] = c
	}

	label := b.money(2)
	label.Signed = true

	return b.config(evo.Labels, []plot.Dataset{ds},
		plot.WithScale("y", plot.ValueAxis(false, b.money(0))),
		plot.WithScale("x", plot.LabelAxis()),
		plot.WithTooltipLabel(label),
	)
}

// ProfitLoss renders the accumulated P&L chart on target.
func (b *Builder) ProfitLoss(lib plot.Library, target plot.Target, evo core.Evolution) (plot.Handle, error) {
	return render(lib, target, b.ProfitLossConfig(evo))
}
