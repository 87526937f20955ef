// Package table renders the yearly benchmark comparison, as HTML rows for
// the page and as a text table for the terminal.
package table

import (
	"bytes"
	"html/template"
	"reflect"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/format"
	"github.com/raykavin/folioview/pkg/logger"
)

const (
	classPositive = "text-green"
	classNegative = "text-red"
	totalLabel    = "Total"
)

// Body is the destination table body.
type Body interface {
	SetHTML(html template.HTML)
}

var rowsTemplate = template.Must(template.New("rows").Parse(
	`{{range .}}<tr{{if .Total}} class="total-row"{{end}}>` +
		`<td class="year">{{.Label}}</td>` +
		`<td class="portfolio">{{.Portfolio}}</td>` +
		`{{range .Cells}}{{if .Absent}}<td class="absent">{{.Placeholder}}</td>` +
		`{{else}}<td><div class="benchmark-return">{{.Return}}</div>` +
		`{{if .Difference}}<div class="benchmark-diff {{.DiffClass}}">{{.Difference}}</div>{{end}}</td>{{end}}{{end}}` +
		"</tr>\n{{end}}"))

type row struct {
	Label     string
	Portfolio string
	Cells     []cell
	Total     bool
}

type cell struct {
	Absent      bool
	Placeholder string
	Return      string
	Difference  string
	DiffClass   string
}

// Renderer writes comparison rows into a table body
type Renderer struct {
	log logger.Logger
}

func NewRenderer(log logger.Logger) *Renderer {
	return &Renderer{log: log}
}

// absent reports whether body is nil, including a nil pointer held in
// the interface.
func absent(body Body) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Render replaces the body's content with one row per year followed by a
// single total row. A missing body or missing records are logged and
// leave the body untouched.
func (r *Renderer) Render(body Body, returns *core.AnnualReturns) {
	if absent(body) {
		r.log.Warn("benchmark table body not found, skipping render")
		return
	}
	if returns == nil {
		r.log.Warn("no annual returns to render")
		return
	}

	var buf bytes.Buffer
	if err := rowsTemplate.Execute(&buf, rows(returns)); err != nil {
		r.log.WithError(err).Error("failed to render benchmark table")
		return
	}

	body.SetHTML(template.HTML(buf.String()))
	r.log.Debugf("benchmark table rendered with %d years", len(returns.Annual))
}

func rows(returns *core.AnnualReturns) []row {
	result := make([]row, 0, len(returns.Annual)+1)
	for _, rec := range returns.Annual {
		result = append(result, newRow(itoa(rec.Year), rec.TotalRecord, false))
	}
	if returns.Total != nil {
		result = append(result, newRow(totalLabel, *returns.Total, true))
	}
	return result
}

func newRow(label string, rec core.TotalRecord, total bool) row {
	r := row{
		Label:     label,
		Portfolio: format.Percent(float64(rec.Portfolio)),
		Total:     total,
		Cells:     make([]cell, 0, len(core.Benchmarks)),
	}
	for _, b := range core.Benchmarks {
		r.Cells = append(r.Cells, newCell(rec, b))
	}
	return r
}

func newCell(rec core.TotalRecord, b core.Benchmark) cell {
	ret, ok := rec.Benchmark(b)
	if !ok {
		return cell{Absent: true, Placeholder: format.Placeholder}
	}

	c := cell{Return: format.Percent(ret)}
	if diff, ok := rec.Difference(b); ok {
		c.Difference = format.SignedPercent(diff)
		c.DiffClass = classPositive
		if diff < 0 {
			c.DiffClass = classNegative
		}
	}
	return c
}
