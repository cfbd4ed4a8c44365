package core

// Color represents an RGB color with 8-bit channels
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the background color for rays that hit nothing
var Black = Color{0, 0, 0}

// Scale returns the color with each channel multiplied by intensity and
// truncated to an integer. Intensity must already be clamped to [0, 1].
func (c Color) Scale(intensity float64) Color {
	return Color{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
	}
}

// Blend linearly mixes c toward other by weight: c*(1-weight) + other*weight.
// Channels are clamped to [0, 255] so bright reflections cannot wrap.
func (c Color) Blend(other Color, weight float64) Color {
	return Color{
		R: clampChannel(float64(c.R)*(1-weight) + float64(other.R)*weight),
		G: clampChannel(float64(c.G)*(1-weight) + float64(other.G)*weight),
		B: clampChannel(float64(c.B)*(1-weight) + float64(other.B)*weight),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
