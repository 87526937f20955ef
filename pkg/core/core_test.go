package core

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_UnmarshalJSON(t *testing.T) {
	var s Series
	require.NoError(t, json.Unmarshal([]byte(`[1.5, null, -2]`), &s))
	require.Len(t, s, 3)
	assert.Equal(t, 1.5, s[0])
	assert.True(t, math.IsNaN(s[1]))
	assert.Equal(t, -2.0, s.Last(0))
	assert.Equal(t, 1.5, s.Last(2))

	require.Error(t, json.Unmarshal([]byte(`"x"`), &s))
}

func TestSeries_LastOr(t *testing.T) {
	assert.Equal(t, 0.0, Series{}.LastOr(0))
	assert.Equal(t, 7.0, Series{1, math.NaN()}.LastOr(7))
	assert.Equal(t, -3.0, Series{5, -3}.LastOr(0))
}

func TestEvolution_Decode(t *testing.T) {
	payload := `{"labels":["Jan","Feb"],"datasets":{"portfolio_value":[1000,1050],
		"capital_invested":[1000,1000],"returns_pct":[0,5],"leverage":[0,0],
		"cash_flows_cumulative":[1000,1000],"pl_accumulated":[0,50]}}`

	var evo Evolution
	require.NoError(t, json.Unmarshal([]byte(payload), &evo))
	require.NoError(t, evo.Validate())
	require.NoError(t, evo.Err())
	assert.Equal(t, Series{1000, 1050}, evo.Datasets.PortfolioValue)
	assert.Equal(t, Series{0, 50}, evo.Datasets.PLAccumulated)
}

func TestEvolution_ValidateMisaligned(t *testing.T) {
	evo := Evolution{Labels: []string{"a", "b"}}
	evo.Datasets.PortfolioValue = Series{1}
	err := evo.Validate()
	require.ErrorIs(t, err, ErrMisaligned)
	assert.Contains(t, err.Error(), "portfolio_value")
}

func TestEvolution_Err(t *testing.T) {
	var evo Evolution
	require.NoError(t, json.Unmarshal([]byte(`{"error":"no data"}`), &evo))

	var apiErr *APIError
	require.True(t, errors.As(evo.Err(), &apiErr))
	assert.Equal(t, "no data", apiErr.Message)
	assert.Contains(t, evo.Err().Error(), "no data")
}

func TestBenchmarkComparison_Series(t *testing.T) {
	payload := `{"labels":["2023-01","2023-02"],
		"datasets":{"portfolio":[100,104],"S&P 500":[100,102],"NASDAQ 100":[]},
		"annual_returns":{"annual":[{"year":2023,"portfolio":4,
			"benchmarks":{"S&P 500":2,"MSCI World":null},
			"differences":{"S&P 500":2}}],
			"total":{"portfolio":4,"benchmarks":{},"differences":{}}}}`

	var cmp BenchmarkComparison
	require.NoError(t, json.Unmarshal([]byte(payload), &cmp))
	require.NoError(t, cmp.Validate())
	assert.Equal(t, Series{100, 104}, cmp.Portfolio())

	_, ok := cmp.Series(SP500)
	assert.True(t, ok)
	_, ok = cmp.Series(Nasdaq100)
	assert.False(t, ok, "empty series is absent")
	_, ok = cmp.Series(EuroStoxx50)
	assert.False(t, ok)

	rec := cmp.AnnualReturns.Annual[0]
	assert.Equal(t, 2023, rec.Year)
	v, ok := rec.Benchmark(SP500)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = rec.Benchmark(MSCIWorld)
	assert.False(t, ok, "null is absent")
	_, ok = rec.Difference(Nasdaq100)
	assert.False(t, ok)
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency("")
	require.NoError(t, err)
	assert.Equal(t, Monthly, f)

	f, err = ParseFrequency("weekly")
	require.NoError(t, err)
	assert.Equal(t, Weekly, f)

	_, err = ParseFrequency("hourly")
	require.ErrorIs(t, err, ErrInvalidFrequency)
}
