// Package format renders numbers the way the dashboard displays them:
// decimal comma, point as thousands separator, fixed decimal places.
package format

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// Placeholder is rendered for absent or non-finite values.
	Placeholder = "—"

	DefaultDecimals = 2

	decimalSep  = ","
	thousandSep = "."
)

// Number renders v with the given number of decimal places (default 2),
// rounding half away from zero. NaN and ±Inf render as Placeholder.
func Number(v float64, decimals ...int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}

	places := DefaultDecimals
	if len(decimals) > 0 && decimals[0] >= 0 {
		places = decimals[0]
	}

	fixed := decimal.NewFromFloat(v).StringFixed(int32(places))
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(group(whole))
	if places > 0 {
		b.WriteString(decimalSep)
		b.WriteString(frac)
	}
	return b.String()
}

// group inserts the thousands separator into a run of digits.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Signed prefixes "+" to non-negative values.
func Signed(v float64, decimals ...int) string {
	s := Number(v, decimals...)
	if s != Placeholder && v >= 0 {
		return "+" + s
	}
	return s
}

// Percent renders v followed by "%".
func Percent(v float64, decimals ...int) string {
	return withSuffix(Number(v, decimals...), "%")
}

// SignedPercent renders v with a leading "+" when non-negative, followed by "%".
func SignedPercent(v float64, decimals ...int) string {
	return withSuffix(Signed(v, decimals...), "%")
}

// Currency renders v followed by a space and the currency symbol.
func Currency(v float64, decimals int, symbol string) string {
	return withSuffix(Number(v, decimals), " "+symbol)
}

// Symbol resolves an ISO 4217 code to its display symbol, falling back
// to the code itself.
func Symbol(code string) string {
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}

func withSuffix(s, suffix string) string {
	if s == Placeholder {
		return s
	}
	return s + suffix
}
