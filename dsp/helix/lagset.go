package helix

import "github.com/cwbudde/algo-helix/internal/ndarray"

// LagSet is the immutable helical lag geometry of a filter: the set of m
// input offsets, one per dimension actually used, that a kernel reads
// from when producing one output sample. Entry 0 is always the zero lag.
//
// Lags are never mutated after construction; [Filter] pairs a LagSet with
// the mutable coefficient array that FactorWilsonBurg updates in place.
type LagSet struct {
	m    int
	rank int

	lag1, lag2, lag3 []int

	min1, max1 int
	min2, max2 int
	min3, max3 int
}

// M returns the number of lags, including the zero lag.
func (ls *LagSet) M() int { return ls.m }

// Rank returns the highest dimension (1, 2, or 3) this LagSet was
// constructed with.
func (ls *LagSet) Rank() int { return ls.rank }

// Lag1 returns the first-dimension lag of entry j.
func (ls *LagSet) Lag1(j int) int { return ls.lag1[j] }

// Lag2 returns the second-dimension lag of entry j (0 if Rank() < 2).
func (ls *LagSet) Lag2(j int) int { return ls.lag2[j] }

// Lag3 returns the third-dimension lag of entry j (0 if Rank() < 3).
func (ls *LagSet) Lag3(j int) int { return ls.lag3[j] }

// Min1, Max1 return the extrema of the first-dimension lags.
func (ls *LagSet) Min1() int { return ls.min1 }
func (ls *LagSet) Max1() int { return ls.max1 }

// Min2, Max2 return the extrema of the second-dimension lags.
func (ls *LagSet) Min2() int { return ls.min2 }
func (ls *LagSet) Max2() int { return ls.max2 }

// Min3, Max3 return the extrema of the third-dimension lags.
func (ls *LagSet) Min3() int { return ls.min3 }
func (ls *LagSet) Max3() int { return ls.max3 }

// NewLagSet1 constructs a 1-D helical lag geometry. lag1[0] must be 0 and
// every subsequent lag1[j] must be strictly positive.
func NewLagSet1(lag1 []int) (*LagSet, error) {
	if len(lag1) == 0 {
		return nil, invalidArgf("lag1 must not be empty")
	}
	if lag1[0] != 0 {
		return nil, invalidArgf("lag1[0] must be 0, got %d", lag1[0])
	}
	for j := 1; j < len(lag1); j++ {
		if lag1[j] <= 0 {
			return nil, invalidArgf("lag1[%d] must be > 0, got %d", j, lag1[j])
		}
	}
	m := len(lag1)
	l1 := cloneInts(lag1)
	return &LagSet{
		m:    m,
		rank: 1,
		lag1: l1,
		lag2: ndarray.ZeroInt(m),
		lag3: ndarray.ZeroInt(m),
		min1: ndarray.MinInt(l1),
		max1: ndarray.MaxInt(l1),
	}, nil
}

// NewLagSet2 constructs a 2-D helical lag geometry. lag1[0] and lag2[0]
// must be 0. For j >= 1, lag2[j] must be >= 0, and if lag2[j] == 0 then
// lag1[j] must be > 0.
func NewLagSet2(lag1, lag2 []int) (*LagSet, error) {
	if len(lag1) == 0 {
		return nil, invalidArgf("lag1 must not be empty")
	}
	if len(lag1) != len(lag2) {
		return nil, invalidArgf("lag1 and lag2 must have the same length: %d != %d", len(lag1), len(lag2))
	}
	if lag1[0] != 0 || lag2[0] != 0 {
		return nil, invalidArgf("lag1[0] and lag2[0] must be 0, got (%d, %d)", lag1[0], lag2[0])
	}
	for j := 1; j < len(lag1); j++ {
		if lag2[j] < 0 {
			return nil, invalidArgf("lag2[%d] must be >= 0, got %d", j, lag2[j])
		}
		if lag2[j] == 0 && lag1[j] <= 0 {
			return nil, invalidArgf("lag1[%d] must be > 0 when lag2[%d] == 0, got %d", j, j, lag1[j])
		}
	}
	m := len(lag1)
	l1, l2 := cloneInts(lag1), cloneInts(lag2)
	return &LagSet{
		m:    m,
		rank: 2,
		lag1: l1,
		lag2: l2,
		lag3: ndarray.ZeroInt(m),
		min1: ndarray.MinInt(l1),
		max1: ndarray.MaxInt(l1),
		min2: ndarray.MinInt(l2),
		max2: ndarray.MaxInt(l2),
	}, nil
}

// NewLagSet3 constructs a 3-D helical lag geometry. lag1[0], lag2[0], and
// lag3[0] must be 0. For j >= 1, lag3[j] must be >= 0; if lag3[j] == 0
// then lag2[j] must be >= 0; and if both lag3[j] and lag2[j] are 0 then
// lag1[j] must be > 0.
func NewLagSet3(lag1, lag2, lag3 []int) (*LagSet, error) {
	if len(lag1) == 0 {
		return nil, invalidArgf("lag1 must not be empty")
	}
	if len(lag1) != len(lag2) || len(lag1) != len(lag3) {
		return nil, invalidArgf("lag1, lag2, and lag3 must have the same length: %d, %d, %d", len(lag1), len(lag2), len(lag3))
	}
	if lag1[0] != 0 || lag2[0] != 0 || lag3[0] != 0 {
		return nil, invalidArgf("lag1[0], lag2[0], lag3[0] must be 0, got (%d, %d, %d)", lag1[0], lag2[0], lag3[0])
	}
	for j := 1; j < len(lag1); j++ {
		if lag3[j] < 0 {
			return nil, invalidArgf("lag3[%d] must be >= 0, got %d", j, lag3[j])
		}
		if lag3[j] == 0 {
			if lag2[j] < 0 {
				return nil, invalidArgf("lag2[%d] must be >= 0 when lag3[%d] == 0, got %d", j, j, lag2[j])
			}
			if lag2[j] == 0 && lag1[j] <= 0 {
				return nil, invalidArgf("lag1[%d] must be > 0 when lag3[%d] == 0 and lag2[%d] == 0, got %d", j, j, j, lag1[j])
			}
		}
	}
	m := len(lag1)
	l1, l2, l3 := cloneInts(lag1), cloneInts(lag2), cloneInts(lag3)
	return &LagSet{
		m:    m,
		rank: 3,
		lag1: l1,
		lag2: l2,
		lag3: l3,
		min1: ndarray.MinInt(l1),
		max1: ndarray.MaxInt(l1),
		min2: ndarray.MinInt(l2),
		max2: ndarray.MaxInt(l2),
		min3: ndarray.MinInt(l3),
		max3: ndarray.MaxInt(l3),
	}, nil
}

// Impulse returns an initial coefficient vector a[0]=1, a[1..m-1]=0 — the
// conventional starting point for a minimum-phase filter before
// factorization, and the default used by NewFilter{1,2,3} when no
// explicit coefficients are given.
func Impulse(m int) []float32 {
	a := make([]float32, m)
	a[0] = 1
	return a
}

func cloneInts(x []int) []int {
	c := make([]int, len(x))
	copy(c, x)
	return c
}
