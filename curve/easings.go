package curve

import "math"

// DefaultOvershoot is the shape parameter of OvershootIn and OvershootOut.
const DefaultOvershoot = 1.70158

// Linear is the identity curve.
func Linear(x float64) float64 {
	return x
}

// Ease is a half cosine wave, slow at both ends.
func Ease(x float64) float64 {
	return 0.5 - math.Cos(x*math.Pi)/2
}

// EaseIn starts slow and finishes fast.
func EaseIn(x float64) float64 {
	return 1 - math.Cos(x*math.Pi/2)
}

// EaseOut starts fast and finishes slow.
func EaseOut(x float64) float64 {
	return Flip(EaseIn)(x)
}

// ElasticOut overshoots and oscillates around 1 before settling.
func ElasticOut(x float64) float64 {
	return 1 - math.Cos(8*x*x*math.Pi)*math.Pow(math.Cos(x*math.Pi)*0.05+0.95, 40)
}

// ElasticIn winds up with growing oscillations before leaving.
func ElasticIn(x float64) float64 {
	return Flip(ElasticOut)(x)
}

// BounceOut lands on 1 with decaying bounces.
func BounceOut(x float64) float64 {
	return 1 - math.Abs(math.Cos(10.9956*x*x))*math.Pow(math.Cos(x*math.Pi)*0.05+0.95, 30)
}

// BounceIn is BounceOut played through the opposite corner.
func BounceIn(x float64) float64 {
	return Flip(BounceOut)(x)
}

// Overshoot returns an In curve that backs up below 0 before heading to 1.
// Larger s backs up further.
func Overshoot(s float64) Operator {
	return func(x float64) float64 {
		return x * x * ((s+1)*x - s)
	}
}

// OvershootIn is Overshoot with DefaultOvershoot.
func OvershootIn(x float64) float64 {
	return Overshoot(DefaultOvershoot)(x)
}

// OvershootOut passes 1 and settles back onto it.
func OvershootOut(x float64) float64 {
	return Flip(OvershootIn)(x)
}

// SharpIncline returns an ease whose middle section steepens as v grows.
// SharpIncline(0) is Ease.
func SharpIncline(v float64) Operator {
	v2 := v * v
	return func(x float64) float64 {
		c := math.Cos(x * math.Pi)
		return 0.5 - math.Sqrt((1+v2)/(1+v2*c*c))*c/2
	}
}
