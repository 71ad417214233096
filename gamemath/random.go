package gamemath

import "math/rand"

// IntBetween returns a uniform integer in [min, max] inclusive.
func IntBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// FloatBetween returns a uniform float in the half-open range [min, max).
func FloatBetween(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
