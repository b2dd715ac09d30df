package helix

import "github.com/cwbudde/algo-helix/internal/ndarray"

// ApplyInverseTranspose1 applies the causal inverse of the transpose of
// this filter to x, writing the result to y. x and y must have the same
// length.
func (f *Filter) ApplyInverseTranspose1(x, y *ndarray.Array1) error {
	if x.N1 != y.N1 {
		return invalidArgf("x and y must have the same length: %d != %d", x.N1, y.N1)
	}
	ls := f.lags
	n1 := y.N1
	i1hi := maxInt(n1-ls.max1, 0)
	for i1 := n1 - 1; i1 >= i1hi; i1-- {
		yi := x.Data[i1]
		for j := 1; j < ls.m; j++ {
			k1 := i1 + ls.lag1[j]
			if k1 < n1 {
				yi -= f.a[j] * y.Data[k1]
			}
		}
		y.Data[i1] = f.a0i * yi
	}
	for i1 := i1hi - 1; i1 >= 0; i1-- {
		yi := x.Data[i1]
		for j := 1; j < ls.m; j++ {
			k1 := i1 + ls.lag1[j]
			yi -= f.a[j] * y.Data[k1]
		}
		y.Data[i1] = f.a0i * yi
	}
	return nil
}

// ApplyInverseTranspose2 applies the causal inverse of the transpose of
// this filter to x, writing the result to y. Uses lag1 and lag2; lag3
// (if any) is ignored.
func (f *Filter) ApplyInverseTranspose2(x, y *ndarray.Array2) error {
	if x.N1 != y.N1 || x.N2 != y.N2 {
		return invalidArgf("x and y must have the same dimensions: (%d,%d) != (%d,%d)", x.N1, x.N2, y.N1, y.N2)
	}
	ls := f.lags
	n1, n2 := y.N1, y.N2
	i1lo := maxInt(0, -ls.min1)
	i1hi := minInt(n1, n1-ls.max1)
	i2hi := 0
	if i1lo <= i1hi {
		i2hi = maxInt(n2-ls.max2, 0)
	}
	for i2 := n2 - 1; i2 >= i2hi; i2-- {
		for i1 := n1 - 1; i1 >= 0; i1-- {
			yi := x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 + ls.lag1[j]
				k2 := i2 + ls.lag2[j]
				if k1 >= 0 && k1 < n1 && k2 < n2 {
					yi -= f.a[j] * y.At(k1, k2)
				}
			}
			y.Set(i1, i2, f.a0i*yi)
		}
	}
	for i2 := i2hi - 1; i2 >= 0; i2-- {
		for i1 := n1 - 1; i1 >= i1hi; i1-- {
			yi := x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 + ls.lag1[j]
				k2 := i2 + ls.lag2[j]
				if k1 < n1 {
					yi -= f.a[j] * y.At(k1, k2)
				}
			}
			y.Set(i1, i2, f.a0i*yi)
		}
		for i1 := i1hi - 1; i1 >= i1lo; i1-- {
			yi := x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 + ls.lag1[j]
				k2 := i2 + ls.lag2[j]
				yi -= f.a[j] * y.At(k1, k2)
			}
			y.Set(i1, i2, f.a0i*yi)
		}
		for i1 := i1lo - 1; i1 >= 0; i1-- {
			yi := x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 + ls.lag1[j]
				k2 := i2 + ls.lag2[j]
				if k1 >= 0 {
					yi -= f.a[j] * y.At(k1, k2)
				}
			}
			y.Set(i1, i2, f.a0i*yi)
		}
	}
	return nil
}

// ApplyInverseTranspose3 applies the causal inverse of the transpose of
// this filter to x, writing the result to y. Uses lag1, lag2, and lag3.
func (f *Filter) ApplyInverseTranspose3(x, y *ndarray.Array3) error {
	if x.N1 != y.N1 || x.N2 != y.N2 || x.N3 != y.N3 {
		return invalidArgf("x and y must have the same dimensions: (%d,%d,%d) != (%d,%d,%d)",
			x.N1, x.N2, x.N3, y.N1, y.N2, y.N3)
	}
	ls := f.lags
	n1, n2, n3 := y.N1, y.N2, y.N3
	i1lo := maxInt(0, -ls.min1)
	i1hi := minInt(n1, n1-ls.max1)
	i2lo := maxInt(0, -ls.min2)
	i2hi := minInt(n2, n2-ls.max2)
	i3hi := 0
	if i1lo <= i1hi && i2lo <= i2hi {
		i3hi = maxInt(n3-ls.max3, 0)
	}
	for i3 := n3 - 1; i3 >= i3hi; i3-- {
		for i2 := n2 - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				yi := x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 + ls.lag1[j]
					k2 := i2 + ls.lag2[j]
					k3 := i3 + ls.lag3[j]
					if k1 >= 0 && k1 < n1 && k2 >= 0 && k2 < n2 && k3 < n3 {
						yi -= f.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, f.a0i*yi)
			}
		}
	}
	for i3 := i3hi - 1; i3 >= 0; i3-- {
		for i2 := n2 - 1; i2 >= i2hi; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				yi := x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 + ls.lag1[j]
					k2 := i2 + ls.lag2[j]
					k3 := i3 + ls.lag3[j]
					if k2 < n2 && k1 >= 0 && k1 < n1 {
						yi -= f.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, f.a0i*yi)
			}
		}
		for i2 := i2hi - 1; i2 >= i2lo; i2-- {
			for i1 := n1 - 1; i1 >= i1hi; i1-- {
				yi := x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 + ls.lag1[j]
					k2 := i2 + ls.lag2[j]
					k3 := i3 + ls.lag3[j]
					if k1 < n1 {
						yi -= f.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, f.a0i*yi)
			}
			for i1 := i1hi - 1; i1 >= i1lo; i1-- {
				yi := x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 + ls.lag1[j]
					k2 := i2 + ls.lag2[j]
					k3 := i3 + ls.lag3[j]
					yi -= f.a[j] * y.At(k1, k2, k3)
				}
				y.Set(i1, i2, i3, f.a0i*yi)
			}
			for i1 := i1lo - 1; i1 >= 0; i1-- {
				yi := x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 + ls.lag1[j]
					k2 := i2 + ls.lag2[j]
					k3 := i3 + ls.lag3[j]
					if k1 >= 0 {
						yi -= f.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, f.a0i*yi)
			}
		}
		for i2 := i2lo - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				yi := x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 + ls.lag1[j]
					k2 := i2 + ls.lag2[j]
					k3 := i3 + ls.lag3[j]
					if k2 >= 0 && k1 >= 0 && k1 < n1 {
						yi -= f.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, f.a0i*yi)
			}
		}
	}
	return nil
}
