package math

import "math"

// HalfPi is a quarter turn in radians.
const HalfPi float32 = math.Pi / 2

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}
