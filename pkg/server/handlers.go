package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/dashboard"
	"github.com/raykavin/folioview/pkg/plot"
	"github.com/samber/lo"
)

// State is the page state the script applies after every flow.
type State struct {
	Elements map[string]dashboard.ElementState `json:"elements"`
	Charts   []plot.Published                  `json:"charts"`
}

type indexData struct {
	Layout      dashboard.Layout
	Frequency   core.Frequency
	Frequencies []core.Frequency
	Height      int
	Elements    map[string]dashboard.ElementState
	Charts      []chartCard
	Benchmark   string
	Benchmarks  []core.Benchmark
}

type chartCard struct {
	ID    string
	Title string
}

var chartTitles = map[plot.Slot]string{
	dashboard.SlotPortfolioValue: "Portfolio value",
	dashboard.SlotReturns:        "Return",
	dashboard.SlotLeverage:       "Cash and leverage",
	dashboard.SlotCashFlow:       "Cumulative cash flows",
	dashboard.SlotProfitLoss:     "Accumulated P&L",
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"charts": len(s.controller.Registry().Slots()),
	})
	if err != nil {
		s.log.Error("Failed to write health status: ", err)
	}
}

// handleIndex renders the page from the current document
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	err := s.indexHTML.Execute(w, indexData{
		Layout:      s.layout,
		Frequency:   s.settings.Frequency,
		Frequencies: []core.Frequency{core.Daily, core.Weekly, core.Monthly},
		Height:      s.settings.Chart.Height,
		Elements:    s.doc.States(),
		Charts: lo.Map(dashboard.EvolutionSlots, func(slot plot.Slot, _ int) chartCard {
			return chartCard{ID: s.layout.Canvases[slot], Title: chartTitles[slot]}
		}),
		Benchmark:  s.layout.Canvases[dashboard.SlotBenchmark],
		Benchmarks: core.Benchmarks,
	})
	if err != nil {
		s.log.Error("Template execution failed: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleScript serves the transpiled page script
func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprint(w, s.scriptContent)
}

// handleEvolution runs the evolution flow for the requested frequency
func (s *Server) handleEvolution(w http.ResponseWriter, r *http.Request) {
	frequency := s.settings.Frequency
	if value := r.URL.Query().Get("frequency"); value != "" {
		parsed, err := core.ParseFrequency(value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		frequency = parsed
	}

	if err := s.controller.LoadEvolution(r.Context(), frequency); err != nil {
		s.log.WithError(err).Debug("evolution flow finished with error")
	}
	s.writeState(w)
}

// handleBenchmarks runs the benchmark flow
func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.LoadBenchmarks(r.Context()); err != nil {
		s.log.WithError(err).Debug("benchmark flow finished with error")
	}
	s.writeState(w)
}

// handleState returns the current page state without loading anything
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.writeState(w)
}

// State snapshots the document and the live charts.
func (s *Server) State() (State, error) {
	charts, err := s.surface.Snapshot()
	if err != nil {
		return State{}, err
	}
	return State{Elements: s.doc.States(), Charts: charts}, nil
}

func (s *Server) writeState(w http.ResponseWriter) {
	state, err := s.State()
	if err != nil {
		s.log.Error("Failed to snapshot page state: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		s.log.Error("JSON encoding failed: ", err)
	}
}
