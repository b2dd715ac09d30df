//go:build fastmath

package helix

import "github.com/meko-christian/algo-approx"

// sqrt32 computes sqrt(x) using a fast approximation. It is called once
// per FactorWilsonBurg call, to seed the causal factor from the zero lag
// of the autocorrelation; approximation error here only changes the
// starting point of the iteration, not its fixed point.
func sqrt32(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
