package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals []int
		want     string
	}{
		{"default decimals", 1234.5, nil, "1.234,50"},
		{"zero decimals", 1049.6, []int{0}, "1.050"},
		{"millions", -1234567.891, []int{2}, "-1.234.567,89"},
		{"small", 0.5, []int{1}, "0,5"},
		{"rounds half away from zero", 2.345, []int{2}, "2,35"},
		{"negative rounds away from zero", -2.345, []int{2}, "-2,35"},
		{"no negative zero", -0.001, []int{2}, "0,00"},
		{"three digits", 999, []int{0}, "999"},
		{"negative decimals fall back", 3, []int{-1}, "3,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.value, tt.decimals...))
		})
	}
}

func TestNumber_FixedDecimalPlaces(t *testing.T) {
	values := []float64{0, 1, -1, 12.3456, 98765.4321, -0.0049, 1e9}
	for d := 0; d <= 4; d++ {
		for _, v := range values {
			s := Number(v, d)
			if d == 0 {
				assert.NotContains(t, s, ",", "value %v", v)
				continue
			}
			idx := strings.LastIndex(s, ",")
			if assert.GreaterOrEqual(t, idx, 0, "value %v", v) {
				assert.Len(t, s[idx+1:], d, "value %v -> %s", v, s)
			}
		}
	}
}

func TestNumber_NonFinite(t *testing.T) {
	assert.Equal(t, Placeholder, Number(math.NaN()))
	assert.Equal(t, Placeholder, Number(math.Inf(1)))
	assert.Equal(t, Placeholder, Percent(math.Inf(-1)))
	assert.Equal(t, Placeholder, SignedPercent(math.NaN()))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+0,00", Signed(0))
	assert.Equal(t, "+5,00%", SignedPercent(5))
	assert.Equal(t, "-1,25%", SignedPercent(-1.25))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "1.050 €", Currency(1050, 0, Symbol("EUR")))
	assert.Equal(t, "$", Symbol("usd"))
	assert.Equal(t, "XYZ", Symbol("XYZ"))
}
