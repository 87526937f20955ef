package plot

import (
	"math"

	"github.com/raykavin/folioview/pkg/format"
)

// ValueFormat describes how a tick or tooltip renders a value. The page
// script applies the same rules; Value and Label are the reference.
type ValueFormat struct {
	Decimals int    `json:"decimals"`
	Suffix   string `json:"suffix,omitempty"`
	Signed   bool   `json:"signed,omitempty"`   // "+" before non-negative values
	Absolute bool   `json:"absolute,omitempty"` // drop the sign entirely

	// Replace the dataset label depending on the value's sign.
	NonNegativeLabel string `json:"nonNegativeLabel,omitempty"`
	NegativeLabel    string `json:"negativeLabel,omitempty"`
}

// Value renders v.
func (f ValueFormat) Value(v float64) string {
	if f.Absolute {
		v = math.Abs(v)
	}

	var s string
	if f.Signed {
		s = format.Signed(v, f.Decimals)
	} else {
		s = format.Number(v, f.Decimals)
	}

	if s == format.Placeholder {
		return s
	}
	return s + f.Suffix
}

// Label renders a tooltip line for a point of the named dataset.
func (f ValueFormat) Label(dataset string, v float64) string {
	label := dataset
	switch {
	case v >= 0 && f.NonNegativeLabel != "":
		label = f.NonNegativeLabel
	case v < 0 && f.NegativeLabel != "":
		label = f.NegativeLabel
	}

	if label != "" {
		label += ": "
	}
	return label + f.Value(v)
}
