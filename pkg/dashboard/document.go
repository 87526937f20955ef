package dashboard

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"sync"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/plot"
)

// Element is one addressable node of the page: a panel, a canvas or a
// table body. Its state is mirrored to the browser.
type Element struct {
	mu     sync.RWMutex
	id     string
	hidden bool
	text   string
	html   template.HTML
}

func (e *Element) ID() string { return e.id }

func (e *Element) Show() { e.setHidden(false) }
func (e *Element) Hide() { e.setHidden(true) }

func (e *Element) setHidden(hidden bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hidden = hidden
}

func (e *Element) Hidden() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hidden
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

// SetHTML replaces the element's inner markup.
func (e *Element) SetHTML(html template.HTML) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.html = html
}

func (e *Element) HTML() template.HTML {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.html
}

// ElementState is the serialisable state of an Element.
type ElementState struct {
	Hidden bool          `json:"hidden"`
	Text   string        `json:"text,omitempty"`
	HTML   template.HTML `json:"html,omitempty"`
}

func (e *Element) State() ElementState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ElementState{Hidden: e.hidden, Text: e.text, HTML: e.html}
}

// Document is the set of elements the page markup declares.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

func NewDocument() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Add declares an element, initially hidden or not. Declaring an id twice
// returns the existing element.
func (d *Document) Add(id string, hidden bool) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.elements[id]; ok {
		return e
	}
	e := &Element{id: id, hidden: hidden}
	d.elements[id] = e
	return e
}

// Lookup finds an element by id.
func (d *Document) Lookup(id string) (*Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.elements[id]
	return e, ok
}

// States returns the state of every element keyed by id.
func (d *Document) States() map[string]ElementState {
	d.mu.RLock()
	defer d.mu.RUnlock()

	states := make(map[string]ElementState, len(d.elements))
	for id, e := range d.elements {
		states[id] = e.State()
	}
	return states
}

// Chart slots, one per canvas.
const (
	SlotPortfolioValue plot.Slot = "portfolioValue"
	SlotReturns        plot.Slot = "returns"
	SlotLeverage       plot.Slot = "leverage"
	SlotCashFlow       plot.Slot = "cashFlow"
	SlotProfitLoss     plot.Slot = "profitLoss"
	SlotBenchmark      plot.Slot = "benchmark"
)

// EvolutionSlots lists the evolution charts in render order.
var EvolutionSlots = []plot.Slot{SlotPortfolioValue, SlotReturns, SlotLeverage, SlotCashFlow, SlotProfitLoss}

// AllSlots lists every chart slot, evolution charts first.
func AllSlots() []plot.Slot {
	slots := make([]plot.Slot, 0, len(EvolutionSlots)+1)
	return append(append(slots, EvolutionSlots...), SlotBenchmark)
}

// Layout names the element ids the controller works with.
type Layout struct {
	LoadingIndicator string
	ChartsContainer  string
	ErrorMessage     string
	Canvases         map[plot.Slot]string
	BenchmarkTable   string
	BenchmarkError   string // optional
}

// DefaultLayout returns the ids used by the served page.
func DefaultLayout() Layout {
	return Layout{
		LoadingIndicator: "loadingIndicator",
		ChartsContainer:  "chartsContainer",
		ErrorMessage:     "errorMessage",
		Canvases: map[plot.Slot]string{
			SlotPortfolioValue: "portfolioValueChart",
			SlotReturns:        "returnsChart",
			SlotLeverage:       "leverageChart",
			SlotCashFlow:       "cashFlowsChart",
			SlotProfitLoss:     "plChart",
			SlotBenchmark:      "benchmarkChart",
		},
		BenchmarkTable: "benchmarkTableBody",
		BenchmarkError: "benchmarkError",
	}
}

// Declare adds every element of the layout to doc with its initial
// visibility: loading shown, charts and error panels hidden.
func (l Layout) Declare(doc *Document) {
	doc.Add(l.LoadingIndicator, false)
	doc.Add(l.ChartsContainer, true)
	doc.Add(l.ErrorMessage, true)
	for _, slot := range AllSlots() {
		doc.Add(l.Canvases[slot], false)
	}
	doc.Add(l.BenchmarkTable, false)
	if l.BenchmarkError != "" {
		doc.Add(l.BenchmarkError, true)
	}
}

// Page holds the resolved elements; BenchmarkError is nil when the page
// has no benchmark error panel.
type Page struct {
	Loading        *Element
	Charts         *Element
	Error          *Element
	Canvases       map[plot.Slot]plot.Target
	BenchmarkTable *Element
	BenchmarkError *Element
}

// Resolve looks up every element of the layout once. All missing required
// ids are reported together.
func Resolve(doc *Document, layout Layout) (*Page, error) {
	var missing []string
	require := func(id string) *Element {
		e, ok := doc.Lookup(id)
		if !ok {
			missing = append(missing, id)
		}
		return e
	}

	page := &Page{
		Loading:        require(layout.LoadingIndicator),
		Charts:         require(layout.ChartsContainer),
		Error:          require(layout.ErrorMessage),
		BenchmarkTable: require(layout.BenchmarkTable),
		Canvases:       make(map[plot.Slot]plot.Target),
	}

	for _, slot := range AllSlots() {
		if e := require(layout.Canvases[slot]); e != nil {
			page.Canvases[slot] = plot.Target{ID: e.ID()}
		}
	}

	if e, ok := doc.Lookup(layout.BenchmarkError); ok && layout.BenchmarkError != "" {
		page.BenchmarkError = e
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", core.ErrMissingElement, strings.Join(missing, ", "))
	}

	return page, nil
}

// States returns the state of every resolved element keyed by id.
func (p *Page) States() map[string]ElementState {
	elements := []*Element{p.Loading, p.Charts, p.Error, p.BenchmarkTable, p.BenchmarkError}

	states := make(map[string]ElementState, len(elements))
	for _, e := range elements {
		if e != nil {
			states[e.ID()] = e.State()
		}
	}
	return states
}
