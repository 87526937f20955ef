package plot

import "github.com/samber/lo"

// DefaultHeight is the canvas height used when none is configured.
const DefaultHeight = 400

// OptionFunc layers a chart-specific override on top of the base options
type OptionFunc func(*Options)

// BaseOptions returns the configuration shared by every chart: responsive
// with an explicit height, index-mode tooltip across all datasets, legend
// on top and a dark tooltip.
func BaseOptions() Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Height:              DefaultHeight,
		Interaction: Interaction{
			Mode:      "index",
			Intersect: false,
		},
		Plugins: Plugins{
			Legend: Legend{
				Display:  true,
				Position: "top",
			},
			Tooltip: Tooltip{
				Enabled:         true,
				BackgroundColor: RGB(0, 0, 0).Alpha(0.8),
				Padding:         12,
				TitleFont:       Font{Size: 14, Weight: "bold"},
				BodyFont:        Font{Size: 13},
			},
		},
	}
}

// NewOptions applies the overrides, in order, to a fresh copy of the base.
func NewOptions(overrides ...OptionFunc) Options {
	opts := BaseOptions()
	for _, override := range overrides {
		override(&opts)
	}
	return opts
}

// WithHeight sets the explicit canvas height; non-positive values keep the base.
func WithHeight(height int) OptionFunc {
	return func(o *Options) {
		if height > 0 {
			o.Height = height
		}
	}
}

// WithScale sets the axis with the given id ("x" or "y").
func WithScale(id string, axis Axis) OptionFunc {
	return func(o *Options) {
		if o.Scales == nil {
			o.Scales = make(map[string]Axis)
		}
		o.Scales[id] = axis
	}
}

// WithTooltipLabel replaces the tooltip label callback and keeps the rest
// of the tooltip styling.
func WithTooltipLabel(label ValueFormat) OptionFunc {
	return func(o *Options) {
		o.Plugins.Tooltip.Callbacks = &TooltipCallbacks{Label: label}
	}
}

// WithLegendToggle makes legend clicks show and hide datasets.
func WithLegendToggle() OptionFunc {
	return func(o *Options) {
		o.Plugins.Legend.Toggle = true
	}
}

// ValueAxis is a y axis with formatted ticks and a light grid.
func ValueAxis(beginAtZero bool, ticks ValueFormat) Axis {
	return Axis{
		BeginAtZero: beginAtZero,
		Ticks:       &Ticks{Format: ticks},
		Grid:        Grid{Color: lo.ToPtr(RGB(0, 0, 0).Alpha(0.05))},
	}
}

// LabelAxis is an x axis without grid lines.
func LabelAxis() Axis {
	return Axis{
		Grid: Grid{Display: lo.ToPtr(false)},
	}
}
