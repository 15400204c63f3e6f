package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop pins a hue to a position in [0,1] of a GradientTable.
type GradientStop struct {
	Hue float64 `yaml:"hue" json:"hue"`
	Pos float64 `yaml:"pos" json:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
// Stops must be sorted by Pos.
type GradientTable []GradientStop

// RainbowGradient walks the hue circle through the colours that look good on
// the tree.
var RainbowGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquoise
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Hcl(0, s, l)
	}
	if t <= g[0].Pos {
		return colorful.Hcl(g[0].Hue, s, l)
	}
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return colorful.Hcl(c2.Hue, s, l)
			}
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Past the last stop.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}
