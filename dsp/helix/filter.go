package helix

// FactorOption configures a call to FactorWilsonBurg1, FactorWilsonBurg2,
// or FactorWilsonBurg3.
type FactorOption func(*factorConfig) error

type factorConfig struct {
	padding    int
	workspaceS []float32
	workspaceT []float32
	workspaceU []float32
}

func defaultFactorConfig() factorConfig {
	return factorConfig{padding: 100}
}

// WithPadding overrides the default 100x zero-padding multiplier applied
// to the filter's lag span (max lag minus min lag) in each dimension: the
// padded length is len(r) + multiplier*span.
// Because the causal inverse of a minimum-phase factor has infinite
// length, any finite padding truncates it; larger multipliers reduce
// truncation error at the cost of more work per iteration. multiplier
// must be positive.
func WithPadding(multiplier int) FactorOption {
	return func(cfg *factorConfig) error {
		if multiplier <= 0 {
			return invalidArgf("padding multiplier must be > 0, got %d", multiplier)
		}
		cfg.padding = multiplier
		return nil
	}
}

// WithWorkspace supplies caller-owned backing arrays for the three
// padded buffers FactorWilsonBurg needs internally (conventionally named
// S, T, and U), letting repeated factorizations of same-shaped
// autocorrelations avoid reallocating them. Each slice must have at
// least the padded length FactorWilsonBurg computes for this call, or
// FactorWilsonBurg returns an ErrInvalidArgument error; callers that don't know the padded
// length in advance should omit this option on the first call.
func WithWorkspace(s, t, u []float32) FactorOption {
	return func(cfg *factorConfig) error {
		cfg.workspaceS = s
		cfg.workspaceT = t
		cfg.workspaceU = u
		return nil
	}
}

// Filter is a minimum-phase causal filter: a [LagSet] describing which
// input offsets contribute to each output sample, paired with one
// coefficient per lag. Filter constructors do not verify that the given
// lags and coefficients are actually minimum-phase; if they are not, the
// inverse and inverse-transpose kernels are unstable.
type Filter struct {
	lags *LagSet
	a    []float32
	a0   float32
	a0i  float32
}

// NewFilter1 constructs a unit-impulse filter for the given 1-D lag
// geometry: a[0]=1, and all other coefficients zero.
func NewFilter1(lag1 []int) (*Filter, error) {
	ls, err := NewLagSet1(lag1)
	if err != nil {
		return nil, err
	}
	return newFilter(ls, Impulse(ls.M()))
}

// NewFilter2 constructs a unit-impulse filter for the given 2-D lag
// geometry: a[0]=1, and all other coefficients zero.
func NewFilter2(lag1, lag2 []int) (*Filter, error) {
	ls, err := NewLagSet2(lag1, lag2)
	if err != nil {
		return nil, err
	}
	return newFilter(ls, Impulse(ls.M()))
}

// NewFilter3 constructs a unit-impulse filter for the given 3-D lag
// geometry: a[0]=1, and all other coefficients zero.
func NewFilter3(lag1, lag2, lag3 []int) (*Filter, error) {
	ls, err := NewLagSet3(lag1, lag2, lag3)
	if err != nil {
		return nil, err
	}
	return newFilter(ls, Impulse(ls.M()))
}

// NewFilter1WithCoefficients constructs a 1-D filter with explicit
// coefficients. a[0] must be nonzero and len(a) must equal len(lag1).
func NewFilter1WithCoefficients(lag1 []int, a []float32) (*Filter, error) {
	ls, err := NewLagSet1(lag1)
	if err != nil {
		return nil, err
	}
	return newFilter(ls, a)
}

// NewFilter2WithCoefficients constructs a 2-D filter with explicit
// coefficients. a[0] must be nonzero and len(a) must equal len(lag1).
func NewFilter2WithCoefficients(lag1, lag2 []int, a []float32) (*Filter, error) {
	ls, err := NewLagSet2(lag1, lag2)
	if err != nil {
		return nil, err
	}
	return newFilter(ls, a)
}

// NewFilter3WithCoefficients constructs a 3-D filter with explicit
// coefficients. a[0] must be nonzero and len(a) must equal len(lag1).
func NewFilter3WithCoefficients(lag1, lag2, lag3 []int, a []float32) (*Filter, error) {
	ls, err := NewLagSet3(lag1, lag2, lag3)
	if err != nil {
		return nil, err
	}
	return newFilter(ls, a)
}

func newFilter(ls *LagSet, a []float32) (*Filter, error) {
	if len(a) != ls.M() {
		return nil, invalidArgf("len(a) must equal the number of lags: %d != %d", len(a), ls.M())
	}
	if a[0] == 0 {
		return nil, invalidArgf("a[0] must be nonzero")
	}
	ac := make([]float32, len(a))
	copy(ac, a)
	return &Filter{
		lags: ls,
		a:    ac,
		a0:   ac[0],
		a0i:  1 / ac[0],
	}, nil
}

// LagSet returns the filter's lag geometry.
func (f *Filter) LagSet() *LagSet { return f.lags }

// Coefficients returns the filter's coefficients, one per lag, in the
// same order as LagSet. The returned slice is a copy.
func (f *Filter) Coefficients() []float32 {
	c := make([]float32, len(f.a))
	copy(c, f.a)
	return c
}

// A0 returns the zero-lag coefficient.
func (f *Filter) A0() float32 { return f.a0 }

// A0Inv returns the reciprocal of the zero-lag coefficient.
func (f *Filter) A0Inv() float32 { return f.a0i }

func (f *Filter) setCoefficient(j int, v float32) {
	f.a[j] = v
	if j == 0 {
		f.a0 = v
		f.a0i = 1 / v
	}
}
