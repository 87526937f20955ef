package core

import "fmt"

// Evolution is the payload of the evolution endpoint: one label per sample
// and six series aligned with it.
type Evolution struct {
	Labels   []string          `json:"labels"`
	Datasets EvolutionDatasets `json:"datasets"`
	Error    string            `json:"error,omitempty"`
}

type EvolutionDatasets struct {
	PortfolioValue      Series `json:"portfolio_value"`
	CapitalInvested     Series `json:"capital_invested"`
	ReturnsPct          Series `json:"returns_pct"`
	Leverage            Series `json:"leverage"`
	CashFlowsCumulative Series `json:"cash_flows_cumulative"`
	PLAccumulated       Series `json:"pl_accumulated"`
}

// Err returns the application error carried by the payload, if any.
func (e Evolution) Err() error {
	if e.Error == "" {
		return nil
	}
	return &APIError{Endpoint: "evolution", Message: e.Error}
}

// Validate checks that every series has one value per label.
func (e Evolution) Validate() error {
	named := []struct {
		name   string
		series Series
	}{
		{"portfolio_value", e.Datasets.PortfolioValue},
		{"capital_invested", e.Datasets.CapitalInvested},
		{"returns_pct", e.Datasets.ReturnsPct},
		{"leverage", e.Datasets.Leverage},
		{"cash_flows_cumulative", e.Datasets.CashFlowsCumulative},
		{"pl_accumulated", e.Datasets.PLAccumulated},
	}

	for _, n := range named {
		if n.series.Length() != len(e.Labels) {
			return fmt.Errorf("%w: %s has %d values for %d labels",
				ErrMisaligned, n.name, n.series.Length(), len(e.Labels))
		}
	}
	return nil
}
