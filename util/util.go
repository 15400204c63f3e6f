package util

import (
	"github.com/ilpoo/elastic-momentum/curve"
)

// SampleCurve evaluates f at n+1 evenly spaced points from 0 to 1.
func SampleCurve(f curve.Operator, n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = f(float64(i) / float64(n))
	}
	return out
}

// GenerateLut builds a look-up table that rises along f over the first half
// and mirrors back down over the second.
func GenerateLut(f curve.Operator, length int) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}
	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := f(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}
