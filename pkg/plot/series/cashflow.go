package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// CashFlowConfig draws cumulative deposits minus withdrawals.
func (b *Builder) CashFlowConfig(evo core.Evolution) plot.Config {
	ds := area("Cumulative cash flow", evo.Datasets.CashFlowsCumulative, plot.Purple)

	return b.config(evo.Labels, []plot.Dataset{ds},
		plot.WithScale("y", plot.ValueAxis(false, b.money(0))),
		plot.WithScale("x", plot.LabelAxis()),
		plot.WithTooltipLabel(b.money(2)),
	)
}

// CashFlow renders the cumulative cash flow chart on target.
func (b *Builder) CashFlow(lib plot.Library, target plot.Target, evo core.Evolution) (plot.Handle, error) {
	return render(lib, target, b.CashFlowConfig(evo))
}
