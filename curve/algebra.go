// Package curve holds numeric operators: functions from normalized progress
// in [0,1] to a progress value, and the combinators that reshape or blend them.
package curve

import "math"

// An Operator maps normalized progress to a shaped progress value.
type Operator func(x float64) float64

// FlipX reflects the output of f across the horizontal midline.
func FlipX(f Operator) Operator {
	return func(x float64) float64 {
		return 1 - f(x)
	}
}

// FlipY reflects the input of f across the vertical midline, reversing the
// curve in time.
func FlipY(f Operator) Operator {
	return func(x float64) float64 {
		return f(1 - x)
	}
}

// Flip reflects f through the point (0.5, 0.5). It turns an In curve into
// its Out counterpart and back.
func Flip(f Operator) Operator {
	return FlipX(FlipY(f))
}

// MergeCurves blends f1 into f2. The weight of f2 at x is blend(x), so the
// result starts as f1 and ends as f2. A nil blend means Ease.
func MergeCurves(f1, f2, blend Operator) Operator {
	if blend == nil {
		blend = Ease
	}
	inverse := FlipX(blend)
	return func(x float64) float64 {
		return f1(x)*inverse(x) + f2(x)*blend(x)
	}
}

// Line returns the straight line through the origin with the given angle.
func Line(angle float64) Operator {
	slope := math.Tan(angle)
	return func(x float64) float64 {
		return slope * x
	}
}

// MergeCurveToLine blends a line of the given angle into c. The result
// leaves the origin with slope tan(angle) and finishes on c.
func MergeCurveToLine(angle float64, c Operator) Operator {
	return MergeCurves(Line(angle), c, Ease)
}
