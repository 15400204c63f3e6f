package stream

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A Scene renders a frame for an animated value.
type Scene interface {
	Render(f *Frame, value float64)
}

// Fill paints the whole strip with a colour blended from From to To.
type Fill struct {
	From colorful.Color
	To   colorful.Color
}

// Render blends by value; values outside [0,1] extrapolate.
func (s *Fill) Render(f *Frame, value float64) {
	f.Fill(s.From.BlendHcl(s.To, value).Clamped())
}

// NewScene builds a Scene from its config.
func NewScene(cfg SceneConfig) (Scene, error) {
	switch cfg.Type {
	case "fill", "":
		from, err := colorful.Hex(cfg.From)
		if err != nil {
			return nil, fmt.Errorf("scene %q: from: %w", cfg.Name, err)
		}
		to, err := colorful.Hex(cfg.To)
		if err != nil {
			return nil, fmt.Errorf("scene %q: to: %w", cfg.Name, err)
		}
		return &Fill{From: from, To: to}, nil
	case "trail":
		gradient := GradientTable(cfg.Gradient)
		if len(gradient) == 0 {
			gradient = RainbowGradient
		}
		if cfg.TrailLength <= 0 {
			return nil, fmt.Errorf("scene %q: trailLength must be positive", cfg.Name)
		}
		return NewGradientTrail(gradient, cfg.TrailLength, cfg.Saturation, cfg.Luminance), nil
	}
	return nil, fmt.Errorf("scene %q: unknown type %q", cfg.Name, cfg.Type)
}

func wrap(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}
