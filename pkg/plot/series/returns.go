package series

import (
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// ReturnsConfig draws the cumulative return. The whole line takes the
// colour of the last value's sign; earlier points do not matter.
func (b *Builder) ReturnsConfig(evo core.Evolution) plot.Config {
	returns := evo.Datasets.ReturnsPct
	ds := area("Cumulative return", returns, plot.SignColor(returns.LastOr(0)))

	percent := plot.ValueFormat{Decimals: 2, Suffix: "%"}
	signed := percent
	signed.Signed = true

	return b.config(evo.Labels, []plot.Dataset{ds},
		plot.WithScale("y", plot.ValueAxis(false, percent)),
		plot.WithScale("x", plot.LabelAxis()),
		plot.WithTooltipLabel(signed),
	)
}

// Returns renders the cumulative return chart on target.
func (b *Builder) Returns(lib plot.Library, target plot.Target, evo core.Evolution) (plot.Handle, error) {
	return render(lib, target, b.ReturnsConfig(evo))
}
