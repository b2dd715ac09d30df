package helix

import "github.com/cwbudde/algo-helix/internal/ndarray"

// Apply1 applies this filter to x, writing the result to y. x and y must
// have the same length; y may alias x only if the filter has no positive
// lag1 entries (each output y[i1] also reads x at the earlier indices
// i1-lag1[j], which an aliased y would already have overwritten).
//
// Interior samples, where every lag falls within the array, run without
// bounds checks; only the leading boundary region (length at most
// LagSet.Max1) guards each lag individually.
func (f *Filter) Apply1(x, y *ndarray.Array1) error {
	if x.N1 != y.N1 {
		return invalidArgf("x and y must have the same length: %d != %d", x.N1, y.N1)
	}
	ls := f.lags
	n1 := y.N1
	i1lo := minInt(ls.max1, n1)
	for i1 := 0; i1 < i1lo; i1++ {
		yi := f.a0 * x.Data[i1]
		for j := 1; j < ls.m; j++ {
			k1 := i1 - ls.lag1[j]
			if k1 >= 0 {
				yi += f.a[j] * x.Data[k1]
			}
		}
		y.Data[i1] = yi
	}
	for i1 := i1lo; i1 < n1; i1++ {
		yi := f.a0 * x.Data[i1]
		for j := 1; j < ls.m; j++ {
			k1 := i1 - ls.lag1[j]
			yi += f.a[j] * x.Data[k1]
		}
		y.Data[i1] = yi
	}
	return nil
}

// Apply2 applies this filter to x, writing the result to y. x and y must
// have the same dimensions. Uses lag1 and lag2; lag3 (if any) is
// ignored.
func (f *Filter) Apply2(x, y *ndarray.Array2) error {
	if x.N1 != y.N1 || x.N2 != y.N2 {
		return invalidArgf("x and y must have the same dimensions: (%d,%d) != (%d,%d)", x.N1, x.N2, y.N1, y.N2)
	}
	ls := f.lags
	n1, n2 := y.N1, y.N2
	i1lo := maxInt(0, ls.max1)
	i1hi := minInt(n1, n1+ls.min1)
	i2lo := n2
	if i1lo <= i1hi {
		i2lo = minInt(ls.max2, n2)
	}
	for i2 := 0; i2 < i2lo; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			yi := f.a0 * x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 - ls.lag1[j]
				k2 := i2 - ls.lag2[j]
				if k1 >= 0 && k1 < n1 && k2 >= 0 {
					yi += f.a[j] * x.At(k1, k2)
				}
			}
			y.Set(i1, i2, yi)
		}
	}
	for i2 := i2lo; i2 < n2; i2++ {
		for i1 := 0; i1 < i1lo; i1++ {
			yi := f.a0 * x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 - ls.lag1[j]
				k2 := i2 - ls.lag2[j]
				if k1 >= 0 {
					yi += f.a[j] * x.At(k1, k2)
				}
			}
			y.Set(i1, i2, yi)
		}
		for i1 := i1lo; i1 < i1hi; i1++ {
			yi := f.a0 * x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 - ls.lag1[j]
				k2 := i2 - ls.lag2[j]
				yi += f.a[j] * x.At(k1, k2)
			}
			y.Set(i1, i2, yi)
		}
		for i1 := i1hi; i1 < n1; i1++ {
			yi := f.a0 * x.At(i1, i2)
			for j := 1; j < ls.m; j++ {
				k1 := i1 - ls.lag1[j]
				k2 := i2 - ls.lag2[j]
				if k1 < n1 {
					yi += f.a[j] * x.At(k1, k2)
				}
			}
			y.Set(i1, i2, yi)
		}
	}
	return nil
}

// Apply3 applies this filter to x, writing the result to y. x and y must
// have the same dimensions. Uses lag1, lag2, and lag3.
func (f *Filter) Apply3(x, y *ndarray.Array3) error {
	if x.N1 != y.N1 || x.N2 != y.N2 || x.N3 != y.N3 {
		return invalidArgf("x and y must have the same dimensions: (%d,%d,%d) != (%d,%d,%d)",
			x.N1, x.N2, x.N3, y.N1, y.N2, y.N3)
	}
	ls := f.lags
	n1, n2, n3 := y.N1, y.N2, y.N3
	i1lo := maxInt(0, ls.max1)
	i1hi := minInt(n1, n1+ls.min1)
	i2lo := maxInt(0, ls.max2)
	i2hi := minInt(n2, n2+ls.min2)
	i3lo := n3
	if i1lo <= i1hi && i2lo <= i2hi {
		i3lo = minInt(ls.max3, n3)
	}
	for i3 := 0; i3 < i3lo; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				yi := f.a0 * x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 - ls.lag1[j]
					k2 := i2 - ls.lag2[j]
					k3 := i3 - ls.lag3[j]
					if k1 >= 0 && k1 < n1 && k2 >= 0 && k2 < n2 && k3 >= 0 {
						yi += f.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, yi)
			}
		}
	}
	for i3 := i3lo; i3 < n3; i3++ {
		for i2 := 0; i2 < i2lo; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				yi := f.a0 * x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 - ls.lag1[j]
					k2 := i2 - ls.lag2[j]
					k3 := i3 - ls.lag3[j]
					if k2 >= 0 && k1 >= 0 && k1 < n1 {
						yi += f.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, yi)
			}
		}
		for i2 := i2lo; i2 < i2hi; i2++ {
			for i1 := 0; i1 < i1lo; i1++ {
				yi := f.a0 * x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 - ls.lag1[j]
					k2 := i2 - ls.lag2[j]
					k3 := i3 - ls.lag3[j]
					if k1 >= 0 {
						yi += f.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, yi)
			}
			for i1 := i1lo; i1 < i1hi; i1++ {
				yi := f.a0 * x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 - ls.lag1[j]
					k2 := i2 - ls.lag2[j]
					k3 := i3 - ls.lag3[j]
					yi += f.a[j] * x.At(k1, k2, k3)
				}
				y.Set(i1, i2, i3, yi)
			}
			for i1 := i1hi; i1 < n1; i1++ {
				yi := f.a0 * x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 - ls.lag1[j]
					k2 := i2 - ls.lag2[j]
					k3 := i3 - ls.lag3[j]
					if k1 < n1 {
						yi += f.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, yi)
			}
		}
		for i2 := i2hi; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				yi := f.a0 * x.At(i1, i2, i3)
				for j := 1; j < ls.m; j++ {
					k1 := i1 - ls.lag1[j]
					k2 := i2 - ls.lag2[j]
					k3 := i3 - ls.lag3[j]
					if k2 < n2 && k1 >= 0 && k1 < n1 {
						yi += f.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, yi)
			}
		}
	}
	return nil
}
