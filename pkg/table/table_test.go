package table

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"math"
	"strings"
	"testing"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/logger/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	html  template.HTML
	calls int
}

func (b *body) SetHTML(html template.HTML) {
	b.html = html
	b.calls++
}

func record(year int, portfolio float64, returns, diffs map[core.Benchmark]float64) core.AnnualRecord {
	rec := core.AnnualRecord{Year: year}
	rec.Portfolio = core.Number(portfolio)
	rec.Benchmarks = map[string]core.Number{}
	rec.Differences = map[string]core.Number{}
	for b, v := range returns {
		rec.Benchmarks[b.String()] = core.Number(v)
	}
	for b, v := range diffs {
		rec.Differences[b.String()] = core.Number(v)
	}
	return rec
}

func sampleReturns() *core.AnnualReturns {
	return &core.AnnualReturns{
		Annual: []core.AnnualRecord{
			record(2022, -8.5,
				map[core.Benchmark]float64{core.SP500: -18.1, core.MSCIWorld: -17.7},
				map[core.Benchmark]float64{core.SP500: 9.6, core.MSCIWorld: 9.2}),
			record(2023, 12.25,
				map[core.Benchmark]float64{core.SP500: 24.2, core.Nasdaq100: 53.8},
				map[core.Benchmark]float64{core.SP500: -11.95, core.Nasdaq100: -41.55}),
		},
		Total: &core.TotalRecord{
			Portfolio:   2.7,
			Benchmarks:  map[string]core.Number{core.SP500.String(): 1.7},
			Differences: map[string]core.Number{core.SP500.String(): 1},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	b := &body{}
	NewRenderer(zerolog.Nop()).Render(b, sampleReturns())

	// html/template writes "+" as "&#43;"; browsers decode it.
	html := stdhtml.UnescapeString(string(b.html))
	require.Equal(t, 1, b.calls)
	assert.Equal(t, 3, strings.Count(html, "<tr"))
	assert.Equal(t, 1, strings.Count(html, `class="total-row"`))
	assert.True(t, strings.LastIndex(html, "total-row") > strings.Index(html, "2023"),
		"total row comes last")

	assert.Contains(t, html, `<td class="portfolio">-8,50%</td>`)
	assert.Contains(t, html, `<div class="benchmark-return">-18,10%</div>`)
	assert.Contains(t, html, `<div class="benchmark-diff text-green">+9,60%</div>`)
	assert.Contains(t, html, `<div class="benchmark-diff text-red">-41,55%</div>`)
}

func TestRenderer_AbsentBenchmark(t *testing.T) {
	b := &body{}
	returns := &core.AnnualReturns{Annual: []core.AnnualRecord{
		record(2024, 1, map[core.Benchmark]float64{core.SP500: 2}, nil),
	}}
	returns.Annual[0].Benchmarks[core.EuroStoxx50.String()] = core.Number(math.NaN())

	NewRenderer(zerolog.Nop()).Render(b, returns)

	html := string(b.html)
	assert.Equal(t, 1, strings.Count(html, "<tr"), "no total record, no total row")
	assert.Equal(t, 3, strings.Count(html, `<td class="absent">—</td>`))
	assert.NotContains(t, html, "benchmark-diff", "no difference line without data")
}

func TestRenderer_Guards(t *testing.T) {
	r := NewRenderer(zerolog.Nop())

	require.NotPanics(t, func() { r.Render(nil, sampleReturns()) })
	require.NotPanics(t, func() { r.Render((*body)(nil), sampleReturns()) })

	b := &body{}
	r.Render(b, nil)
	assert.Zero(t, b.calls)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReturns())

	out := buf.String()
	assert.Contains(t, out, "NASDAQ 100")
	assert.Contains(t, out, "-18,10% (+9,60%)")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "—")
}
