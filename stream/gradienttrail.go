package stream

// A GradientTrail repeats a gradient along the strip and slides it by the
// animated value, one trail length per unit.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	saturation  float64
	luminance   float64
}

// NewGradientTrail creates an instance of a GradientTrail object. Zero
// saturation and luminance mean 1.0 and 0.05.
func NewGradientTrail(gradient GradientTable, trailLength int, saturation, luminance float64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.saturation = saturation
	if g.saturation == 0 {
		g.saturation = 1.0
	}
	g.luminance = luminance
	if g.luminance == 0 {
		g.luminance = 0.05
	}

	return g
}

// Render paints the trail shifted by value trail lengths.
func (g *GradientTrail) Render(f *Frame, value float64) {
	length := float64(g.trailLength)
	for i := range f.pixels {
		t := wrap(float64(i)/length - value)
		f.pixels[i] = g.gradient.GetColor(t, g.saturation, g.luminance)
	}
}
