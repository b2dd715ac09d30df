// Package helix implements multidimensional minimum-phase filters and
// their Wilson-Burg factorization, generalized from Claerbout's
// multidimensional recursive filters via a helix (Geophysics, v. 63, n. 5,
// 1998).
//
// A minimum-phase filter is a causal, stable linear filter whose causal
// stable inverse is also stable. [LagSet] describes the filter's sparse
// lag geometry — the set of input offsets that contribute to each output
// sample, ordered so the filter is causal along a helix through the
// array. [Filter] wraps a LagSet with coefficients and exposes the four
// application kernels ([Filter.Apply1], [Filter.ApplyTranspose1],
// [Filter.ApplyInverse1], [Filter.ApplyInverseTranspose1], and their 2-D
// and 3-D counterparts) plus [Filter.FactorWilsonBurg1] and its 2-D/3-D
// counterparts, which build a minimum-phase filter whose autocorrelation
// approximates a given symmetric autocorrelation.
//
// Constructors do not verify that specified lags and coefficients
// correspond to an actually minimum-phase filter. If they don't, the
// inverse and inverse-transpose kernels are unstable.
package helix
