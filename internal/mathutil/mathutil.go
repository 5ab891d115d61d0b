// Package mathutil holds the handful of scalar primitives the built-in
// nodes share: linear interpolation and waveshape generation.
package mathutil

import "math"

// Lerp linearly interpolates between a and b at x. x is not clamped, so
// values outside [0,1] extrapolate.
func Lerp(a, b, x float64) float64 {
	return a + (b-a)*x
}

// Delerp is the inverse of Lerp: given y = Lerp(a, b, x), Delerp(a, b, y)
// returns x. The caller must ensure a != b.
func Delerp(a, b, y float64) float64 {
	return (y - a) / (b - a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wave identifies an oscillator waveshape.
type Wave int

const (
	WaveSin Wave = iota
	WaveSaw
	WaveSquare
	WaveTriangle
)

// Shape computes the waveform amplitude at the given phase, phase in [0,1).
func Shape(w Wave, phase float64) float32 {
	switch w {
	case WaveSin:
		return float32(math.Sin(2 * math.Pi * phase))
	case WaveSaw:
		return float32(2*phase - 1)
	case WaveTriangle:
		return float32(2*(math.Abs(2*phase-1)-0.5))
	case WaveSquare:
		if phase <= 0.5 {
			return 1
		}
		return -1
	default:
		return 0
	}
}
