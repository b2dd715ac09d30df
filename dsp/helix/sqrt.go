//go:build !fastmath

package helix

import "math"

// sqrt32 computes sqrt(x) using standard library math. It is called
// once per FactorWilsonBurg call, to seed the causal factor from the
// zero lag of the autocorrelation.
func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
