package universe

import "math"

// Noise maps an integer to a reproducible pseudo-random value in [0, 1)
// using the classic sin hash frac(sin(i·12.9898)·43758.5453). It keeps no
// state, so a layout built from it is identical on every run.
func Noise(i int) float64 {
	x := math.Sin(float64(i)*12.9898) * 43758.5453
	f := x - math.Floor(x)
	// x - floor(x) rounds up to exactly 1 for tiny negative x
	if f >= 1 {
		return 0
	}
	return f
}
