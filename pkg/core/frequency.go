package core

import "fmt"

// Frequency is the sampling step of the evolution series.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"

	DefaultFrequency = Monthly
)

// ParseFrequency maps a query value to a Frequency. An empty value yields
// the default.
func ParseFrequency(value string) (Frequency, error) {
	switch f := Frequency(value); f {
	case "":
		return DefaultFrequency, nil
	case Daily, Weekly, Monthly:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, value)
	}
}

func (f Frequency) String() string {
	return string(f)
}
