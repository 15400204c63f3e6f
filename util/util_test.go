package util

import (
	"testing"

	"github.com/ilpoo/elastic-momentum/curve"
	"github.com/stretchr/testify/assert"
)

func TestSampleCurve(t *testing.T) {
	s := SampleCurve(curve.Linear, 4)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, s)
	assert.Len(t, SampleCurve(curve.Ease, 0), 2)
}

func TestGenerateLutIsSymmetric(t *testing.T) {
	lut := GenerateLut(curve.Linear, 8)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 0.75, 0.5, 0.25, 0}, lut)
	assert.Equal(t, []float64{0}, GenerateLut(curve.Linear, 1))
}
