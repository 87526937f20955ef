package core

import (
	"encoding/json"
	"math"
)

// Series is an ordered run of values aligned with a label sequence.
// Absent points (JSON null) are held as NaN.
type Series []float64

// Length returns the number of values in the series
func (s Series) Length() int {
	return len(s)
}

// Empty reports whether the series holds no values
func (s Series) Empty() bool {
	return len(s) == 0
}

// Last returns the value at a specified position from the end.
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series) Last(position int) float64 {
	return s[len(s)-1-position]
}

// LastOr returns the last value, or fallback when the series is empty
// or its last point is absent.
func (s Series) LastOr(fallback float64) float64 {
	if len(s) == 0 || math.IsNaN(s.Last(0)) {
		return fallback
	}
	return s.Last(0)
}

// UnmarshalJSON decodes an array of numbers, mapping null entries to NaN.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == nil {
		*s = nil
		return nil
	}

	values := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			values[i] = math.NaN()
			continue
		}
		values[i] = *v
	}
	*s = values
	return nil
}

// Number is a single value that may be absent (JSON null -> NaN).
type Number float64

// Valid reports whether the number holds a finite value.
func (n Number) Valid() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
