package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/folioview/pkg/core"
	"github.com/samber/lo"
)

// Text writes the comparison as a terminal table. Each benchmark cell
// shows the return followed by the signed difference in parentheses.
func Text(w io.Writer, returns *core.AnnualReturns) {
	table := tablewriter.NewWriter(w)

	header := append([]string{"Year", "Portfolio"},
		lo.Map(core.Benchmarks, func(b core.Benchmark, _ int) string { return b.String() })...)
	table.SetHeader(header)

	if returns != nil {
		for _, r := range rows(returns) {
			table.Append(textRow(r))
		}
	}

	alignment := lo.Times(len(header), func(i int) int {
		if i == 0 {
			return tablewriter.ALIGN_LEFT
		}
		return tablewriter.ALIGN_RIGHT
	})
	table.SetColumnAlignment(alignment)
	table.Render()
}

func textRow(r row) []string {
	line := []string{r.Label, r.Portfolio}
	for _, c := range r.Cells {
		switch {
		case c.Absent:
			line = append(line, c.Placeholder)
		case c.Difference == "":
			line = append(line, c.Return)
		default:
			line = append(line, fmt.Sprintf("%s (%s)", c.Return, c.Difference))
		}
	}
	return line
}

func itoa(year int) string {
	return strconv.Itoa(year)
}
