package plot

import (
	"bytes"
	"math"
	"strconv"
)

// ChartType is the Chart.js chart type.
type ChartType string

const ChartLine ChartType = "line"

// Config is the full declarative description of one chart, serialised in
// the shape Chart.js expects.
type Config struct {
	Type    ChartType `json:"type"`
	Data    Data      `json:"data"`
	Options Options   `json:"options"`
}

// Data holds the x labels and the datasets drawn against them
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one visual line or area
type Dataset struct {
	Label            string  `json:"label"`
	Data             Values  `json:"data"`
	BorderColor      Color   `json:"borderColor"`
	BackgroundColor  Color   `json:"backgroundColor"`
	BorderWidth      int     `json:"borderWidth"`
	BorderDash       []int   `json:"borderDash,omitempty"`
	Fill             bool    `json:"fill"`
	Tension          float64 `json:"tension"`
	PointRadius      int     `json:"pointRadius"`
	PointHoverRadius int     `json:"pointHoverRadius"`
	Hidden           bool    `json:"hidden,omitempty"`

	// SegmentColors[i] strokes the segment from point i to i+1.
	SegmentColors []Color `json:"segmentColors,omitempty"`
	// SegmentFills[i] fills the area under the segment from point i to i+1.
	SegmentFills []Color `json:"segmentFills,omitempty"`
	// PointColors[i] fills the marker of point i.
	PointColors []Color `json:"pointColors,omitempty"`
}

// Values is a data column; non-finite entries serialise as null so the
// chart leaves a gap.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Options mirrors the subset of Chart.js options used by the dashboard
type Options struct {
	Responsive          bool            `json:"responsive"`
	MaintainAspectRatio bool            `json:"maintainAspectRatio"`
	Height              int             `json:"height,omitempty"`
	Interaction         Interaction     `json:"interaction"`
	Plugins             Plugins         `json:"plugins"`
	Scales              map[string]Axis `json:"scales,omitempty"`
}

type Interaction struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type Plugins struct {
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`
}

// Legend configures the legend; Toggle flips the dataset's own hidden
// state on click.
type Legend struct {
	Display  bool   `json:"display"`
	Position string `json:"position"`
	Toggle   bool   `json:"toggle,omitempty"`
}

type Tooltip struct {
	Enabled         bool              `json:"enabled"`
	BackgroundColor Color             `json:"backgroundColor"`
	Padding         int               `json:"padding"`
	TitleFont       Font              `json:"titleFont"`
	BodyFont        Font              `json:"bodyFont"`
	Callbacks       *TooltipCallbacks `json:"callbacks,omitempty"`
}

type TooltipCallbacks struct {
	Label ValueFormat `json:"label"`
}

type Font struct {
	Size   int    `json:"size"`
	Weight string `json:"weight,omitempty"`
}

// Axis describes one scale ("x" or "y")
type Axis struct {
	BeginAtZero bool       `json:"beginAtZero"`
	Ticks       *Ticks     `json:"ticks,omitempty"`
	Grid        Grid       `json:"grid"`
	Title       *AxisTitle `json:"title,omitempty"`
}

type Ticks struct {
	Format ValueFormat `json:"format"`
}

type Grid struct {
	Display *bool  `json:"display,omitempty"`
	Color   *Color `json:"color,omitempty"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}
