package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/logger/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	evolution  core.Evolution
	benchmarks core.BenchmarkComparison
	err        error

	mu        sync.Mutex
	requested []core.Frequency
}

func (f *stubFetcher) Evolution(_ context.Context, frequency core.Frequency) (core.Evolution, error) {
	f.mu.Lock()
	f.requested = append(f.requested, frequency)
	f.mu.Unlock()
	return f.evolution, f.err
}

func (f *stubFetcher) Benchmarks(context.Context) (core.BenchmarkComparison, error) {
	return f.benchmarks, f.err
}

func (f *stubFetcher) frequencies() []core.Frequency {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.Frequency(nil), f.requested...)
}

func newStub() *stubFetcher {
	return &stubFetcher{
		evolution: core.Evolution{
			Labels: []string{"Jan", "Feb"},
			Datasets: core.EvolutionDatasets{
				PortfolioValue:      core.Series{1000, 1050},
				CapitalInvested:     core.Series{1000, 1000},
				ReturnsPct:          core.Series{0, 5},
				Leverage:            core.Series{0, 0},
				CashFlowsCumulative: core.Series{1000, 1000},
				PLAccumulated:       core.Series{0, 50},
			},
		},
		benchmarks: core.BenchmarkComparison{
			Labels:   []string{"2024"},
			Datasets: map[string]core.Series{core.PortfolioKey: {100}},
			AnnualReturns: &core.AnnualReturns{
				Total: &core.TotalRecord{Portfolio: 3},
			},
		},
	}
}

func newTestServer(t *testing.T, fetcher *stubFetcher, options ...Option) *httptest.Server {
	t.Helper()

	s, err := New(fetcher, zerolog.Nop(), options...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func decodeState(t *testing.T, body string) State {
	t.Helper()

	var state State
	require.NoError(t, json.Unmarshal([]byte(body), &state))
	return state
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t, newStub())

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, id := range []string{
		"loadingIndicator", "chartsContainer", "errorMessage",
		"portfolioValueChart", "returnsChart", "leverageChart",
		"cashFlowsChart", "plChart", "benchmarkChart",
		"benchmarkTableBody", "benchmarkError",
	} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `<option value="monthly" selected>`)
	assert.Contains(t, body, "<th>S&amp;P 500</th>")

	resp, _ = get(t, ts.URL+"/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScript(t *testing.T) {
	ts := newTestServer(t, newStub(), WithDebug())

	resp, body := get(t, ts.URL+"/assets/dashboard.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/javascript", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "applyState")
}

func TestEvolution(t *testing.T) {
	fetcher := newStub()
	ts := newTestServer(t, fetcher)

	resp, body := get(t, ts.URL+"/api/evolution?frequency=weekly")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []core.Frequency{core.Weekly}, fetcher.frequencies())

	state := decodeState(t, body)
	assert.False(t, state.Elements["chartsContainer"].Hidden)
	assert.True(t, state.Elements["loadingIndicator"].Hidden)
	assert.Len(t, state.Charts, 5)
	assert.Equal(t, "portfolioValueChart", state.Charts[0].Target)
}

func TestEvolution_DefaultFrequency(t *testing.T) {
	fetcher := newStub()
	settings := core.DefaultSettings()
	settings.Frequency = core.Daily
	ts := newTestServer(t, fetcher, WithSettings(settings))

	resp, _ := get(t, ts.URL+"/api/evolution")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []core.Frequency{core.Daily}, fetcher.frequencies())
}

func TestEvolution_InvalidFrequency(t *testing.T) {
	fetcher := newStub()
	ts := newTestServer(t, fetcher)

	resp, _ := get(t, ts.URL+"/api/evolution?frequency=hourly")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, fetcher.frequencies())
}

func TestEvolution_ErrorShownInState(t *testing.T) {
	fetcher := newStub()
	fetcher.err = &core.APIError{Endpoint: "evolution", Message: "no data"}
	ts := newTestServer(t, fetcher)

	resp, body := get(t, ts.URL+"/api/evolution")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	state := decodeState(t, body)
	assert.Equal(t, "Error loading charts: no data", state.Elements["errorMessage"].Text)
	assert.True(t, state.Elements["chartsContainer"].Hidden)
	assert.Empty(t, state.Charts)
}

func TestBenchmarksAndState(t *testing.T) {
	ts := newTestServer(t, newStub())

	resp, body := get(t, ts.URL+"/api/benchmarks")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	state := decodeState(t, body)
	require.Len(t, state.Charts, 1)
	assert.Equal(t, "benchmarkChart", state.Charts[0].Target)
	assert.Contains(t, string(state.Elements["benchmarkTableBody"].HTML), "3,00%")

	_, body = get(t, ts.URL+"/api/state")
	assert.Len(t, decodeState(t, body).Charts, 1)

	resp, body = get(t, ts.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","charts":1}`, body)
}
