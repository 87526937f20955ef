package plot

import (
	"fmt"
	"math"
	"strconv"
)

// Color is an RGB colour with alpha, serialised in CSS notation.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Alpha returns the same colour with the given opacity.
func (c Color) Alpha(a float64) Color {
	c.A = a
	return c
}

// String renders "rgb(r, g, b)" for opaque colours and "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Transparent is used for datasets drawn without a fill.
var Transparent = Color{}

var (
	Blue   = RGB(59, 130, 246)
	Gray   = RGB(156, 163, 175)
	Green  = RGB(34, 197, 94)
	Red    = RGB(239, 68, 68)
	Purple = RGB(139, 92, 246)
	Orange = RGB(249, 115, 22)
	Teal   = RGB(20, 184, 166)
	Amber  = RGB(234, 179, 8)
	Violet = RGB(168, 85, 247)
)

// SignColor is green for non-negative values and red for negative ones.
// Absent (NaN) values get Transparent.
func SignColor(v float64) Color {
	if math.IsNaN(v) {
		return Transparent
	}
	if v < 0 {
		return Red
	}
	return Green
}

// SegmentColors colours the segment between point i and i+1 by the sign of
// the value at i+1. The result has len(values)-1 entries.
func SegmentColors(values []float64) []Color {
	if len(values) < 2 {
		return []Color{}
	}

	colors := make([]Color, len(values)-1)
	for i := range colors {
		colors[i] = SignColor(values[i+1])
	}
	return colors
}

// PointColors colours every point by its own sign.
func PointColors(values []float64) []Color {
	colors := make([]Color, len(values))
	for i, v := range values {
		colors[i] = SignColor(v)
	}
	return colors
}
