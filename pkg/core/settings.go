package core

// Settings represents the rendering configuration shared by the dashboard
type Settings struct {
	Frequency Frequency     // Frequency requested on page mount
	Chart     ChartSettings // Chart presentation settings
}

// ChartSettings holds presentation values applied to every chart
type ChartSettings struct {
	Currency string // ISO 4217 code used for value suffixes, e.g. "EUR"
	Height   int    // Explicit canvas height in pixels
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Frequency: DefaultFrequency,
		Chart: ChartSettings{
			Currency: "EUR",
			Height:   400,
		},
	}
}
