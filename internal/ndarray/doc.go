// Package ndarray provides contiguous, row-major dense float32 buffers in
// 1, 2, and 3 dimensions, plus the small set of array primitives the helix
// filter kernels and Wilson-Burg factorization build on: allocation,
// zero-fill, offset copies, and reductions over int slices.
//
// Arrays store i1 fastest, matching the nested-loop order
// (i3, i2, i1) used throughout dsp/helix, which in turn matches the memory
// layout of the jagged float[][][] arrays in the Java source this package's
// consumers were ported from.
package ndarray
