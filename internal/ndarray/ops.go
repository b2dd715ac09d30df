package ndarray

// Zero sets every element of buf to 0. Adapted from the teacher's
// dsp/core.Zero, changed from []float64 to []float32 (pass an
// Array{1,2,3}'s Data field).
func Zero(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// Fill sets every element of buf to v.
func Fill(buf []float32, v float32) {
	for i := range buf {
		buf[i] = v
	}
}

// CopyOffset1 copies src into dst starting at index dstOffset.
func CopyOffset1(dst *Array1, src []float32, dstOffset int) {
	copy(dst.Data[dstOffset:], src)
}

// CopyOffset2 copies every element of src into dst, offsetting the first
// dimension by dstOffset1 and the second by dstOffset2.
func CopyOffset2(dst *Array2, src *Array2, dstOffset1, dstOffset2 int) {
	for i2 := 0; i2 < src.N2; i2++ {
		off := (dstOffset2+i2)*dst.N1 + dstOffset1
		copy(dst.Data[off:off+src.N1], src.Row(i2))
	}
}

// CopyOffset3 copies every element of src into dst, offsetting each
// dimension by dstOffset1, dstOffset2, dstOffset3 respectively.
func CopyOffset3(dst *Array3, src *Array3, dstOffset1, dstOffset2, dstOffset3 int) {
	for i3 := 0; i3 < src.N3; i3++ {
		for i2 := 0; i2 < src.N2; i2++ {
			off := ((dstOffset3+i3)*dst.N2+(dstOffset2+i2))*dst.N1 + dstOffset1
			copy(dst.Data[off:off+src.N1], src.Row(i2, i3))
		}
	}
}

// MinInt returns the minimum value in x. Panics on an empty slice.
func MinInt(x []int) int {
	m := x[0]
	for _, v := range x[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// MaxInt returns the maximum value in x. Panics on an empty slice.
func MaxInt(x []int) int {
	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// ZeroInt returns a new slice of n zero ints.
func ZeroInt(n int) []int {
	return make([]int, n)
}
