package core

import (
	"fmt"
	"math"
	"sort"
)

// Benchmark is one of the market indices tracked against the portfolio.
type Benchmark string

const (
	SP500       Benchmark = "S&P 500"
	Nasdaq100   Benchmark = "NASDAQ 100"
	MSCIWorld   Benchmark = "MSCI World"
	EuroStoxx50 Benchmark = "EuroStoxx 50"
)

// Benchmarks lists the tracked indices in display order.
var Benchmarks = []Benchmark{SP500, Nasdaq100, MSCIWorld, EuroStoxx50}

// PortfolioKey is the dataset key of the portfolio's own rebased series.
const PortfolioKey = "portfolio"

func (b Benchmark) String() string {
	return string(b)
}

// BenchmarkComparison is the payload of the benchmarks endpoint. Every
// dataset is rebased to 100 at the first label.
type BenchmarkComparison struct {
	Labels        []string          `json:"labels"`
	Datasets      map[string]Series `json:"datasets"`
	AnnualReturns *AnnualReturns    `json:"annual_returns"`
	Error         string            `json:"error,omitempty"`
}

// Portfolio returns the portfolio's rebased series.
func (c BenchmarkComparison) Portfolio() Series {
	return c.Datasets[PortfolioKey]
}

// Series returns the rebased series of a benchmark and whether it is
// present with at least one value.
func (c BenchmarkComparison) Series(b Benchmark) (Series, bool) {
	s, ok := c.Datasets[string(b)]
	return s, ok && !s.Empty()
}

// Err returns the application error carried by the payload, if any.
func (c BenchmarkComparison) Err() error {
	if c.Error == "" {
		return nil
	}
	return &APIError{Endpoint: "benchmarks", Message: c.Error}
}

// Validate checks that every non-empty dataset has one value per label.
func (c BenchmarkComparison) Validate() error {
	keys := make([]string, 0, len(c.Datasets))
	for k := range c.Datasets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s := c.Datasets[k]
		if !s.Empty() && s.Length() != len(c.Labels) {
			return fmt.Errorf("%w: %s has %d values for %d labels",
				ErrMisaligned, k, s.Length(), len(c.Labels))
		}
	}
	return nil
}

// AnnualReturns holds one comparison record per calendar year plus the
// aggregate over the whole period.
type AnnualReturns struct {
	Annual []AnnualRecord `json:"annual"`
	Total  *TotalRecord   `json:"total"`
}

// TotalRecord compares the portfolio with each benchmark over a period.
type TotalRecord struct {
	Portfolio   Number            `json:"portfolio"`
	Benchmarks  map[string]Number `json:"benchmarks"`
	Differences map[string]Number `json:"differences"`
}

// AnnualRecord is a TotalRecord restricted to one calendar year.
type AnnualRecord struct {
	Year int `json:"year"`
	TotalRecord
}

// Benchmark returns the benchmark's return; false when absent.
func (r TotalRecord) Benchmark(b Benchmark) (float64, bool) {
	return lookup(r.Benchmarks, b)
}

// Difference returns portfolio minus benchmark; false when absent.
func (r TotalRecord) Difference(b Benchmark) (float64, bool) {
	return lookup(r.Differences, b)
}

func lookup(values map[string]Number, b Benchmark) (float64, bool) {
	v, ok := values[string(b)]
	if !ok || !v.Valid() {
		return math.NaN(), false
	}
	return float64(v), true
}
