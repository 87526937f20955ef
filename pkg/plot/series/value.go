package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// PortfolioValueConfig draws the account value as a filled area and the
// invested capital as a dashed line, on a zero-based currency axis.
func (b *Builder) PortfolioValueConfig(evo core.Evolution) plot.Config {
	value := area("Account value", evo.Datasets.PortfolioValue, plot.Blue)

	capital := line("Invested capital", evo.Datasets.CapitalInvested, plot.Gray)
	capital.BorderDash = []int{5, 5}

	return b.config(evo.Labels, []plot.Dataset{value, capital},
		plot.WithScale("y", plot.ValueAxis(true, b.money(0))),
		plot.WithScale("x", plot.LabelAxis()),
		plot.WithTooltipLabel(b.money(2)),
	)
}

// PortfolioValue renders the portfolio value chart on target.
func (b *Builder) PortfolioValue(lib plot.Library, target plot.Target, evo core.Evolution) (plot.Handle, error) {
	return render(lib, target, b.PortfolioValueConfig(evo))
}
