package helix

import "github.com/cwbudde/algo-helix/internal/ndarray"

// FactorWilsonBurg1 factors this filter's coefficients, in place, from
// the given 1-D autocorrelation r using the iterative Wilson-Burg
// algorithm. If it converges, the impulse response of the resulting
// filter cascaded with its transpose approximates r.
//
// r must have odd length; its middle element is the zero lag, and the
// remaining elements are symmetric about it. maxiter bounds the number
// of iterations and must be positive; epsilon must be positive.
// Iterations have converged when the squared change of every
// coefficient is at most epsilon*r[center], i.e. every change is at
// most sqrt(epsilon*r[center]). If iterations exhaust maxiter without converging,
// FactorWilsonBurg1 returns ErrConvergence and leaves the filter's
// coefficients at their last-iteration values.
func (f *Filter) FactorWilsonBurg1(maxiter int, epsilon float32, r *ndarray.Array1, opts ...FactorOption) error {
	if r.N1%2 != 1 {
		return invalidArgf("r must have odd length, got %d", r.N1)
	}
	if maxiter <= 0 {
		return invalidArgf("maxiter must be > 0, got %d", maxiter)
	}
	if epsilon <= 0 {
		return invalidArgf("epsilon must be > 0, got %g", epsilon)
	}
	cfg, err := resolveFactorConfig(opts)
	if err != nil {
		return err
	}

	ls := f.lags
	m1 := ls.max1 - ls.min1
	n1 := r.N1 + cfg.padding*m1
	l1 := (r.N1 - 1) / 2
	k1 := n1 - 1 - ls.max1

	s, t, u, err := cfg.buffers1(n1)
	if err != nil {
		return err
	}

	ndarray.Zero(s.Data)
	ndarray.CopyOffset1(s, r.Data, k1-l1)

	ndarray.Zero(f.a)
	f.setCoefficient(0, sqrt32(s.Data[k1]))

	eemax := s.Data[k1] * epsilon
	var converged bool
	var lastDeltaSq float32
	var niter int
	for niter = 0; niter < maxiter && !converged; niter++ {
		if err := f.ApplyInverseTranspose1(s, t); err != nil {
			return err
		}
		if err := f.ApplyInverse1(t, u); err != nil {
			return err
		}
		u.Data[k1] += 1
		u.Data[k1] *= 0.5
		for i1 := 0; i1 < k1; i1++ {
			u.Data[i1] = 0
		}

		if err := f.Apply1(u, t); err != nil {
			return err
		}
		converged = true
		for j := 0; j < ls.m; j++ {
			j1 := k1 + ls.lag1[j]
			if j1 >= 0 && j1 < n1 {
				aj := t.Data[j1]
				if converged {
					e := f.a[j] - aj
					lastDeltaSq = e * e
					converged = lastDeltaSq <= eemax
				}
				f.setCoefficient(j, aj)
			}
		}
	}
	if !converged {
		return convergenceErr(niter, lastDeltaSq, eemax)
	}
	return nil
}

// FactorWilsonBurg2 factors this filter's coefficients, in place, from
// the given 2-D autocorrelation r. r must have odd lengths in both
// dimensions. See FactorWilsonBurg1 for the convergence contract.
func (f *Filter) FactorWilsonBurg2(maxiter int, epsilon float32, r *ndarray.Array2, opts ...FactorOption) error {
	if r.N1%2 != 1 {
		return invalidArgf("r.N1 must be odd, got %d", r.N1)
	}
	if r.N2%2 != 1 {
		return invalidArgf("r.N2 must be odd, got %d", r.N2)
	}
	if maxiter <= 0 {
		return invalidArgf("maxiter must be > 0, got %d", maxiter)
	}
	if epsilon <= 0 {
		return invalidArgf("epsilon must be > 0, got %g", epsilon)
	}
	cfg, err := resolveFactorConfig(opts)
	if err != nil {
		return err
	}

	ls := f.lags
	m1 := ls.max1 - ls.min1
	m2 := ls.max2 - ls.min2
	n1 := r.N1 + cfg.padding*m1
	n2 := r.N2 + cfg.padding*m2
	l1 := (r.N1 - 1) / 2
	l2 := (r.N2 - 1) / 2
	k1 := n1 - 1 - ls.max1
	k2 := n2 - 1 - ls.max2

	s, t, u, err := cfg.buffers2(n1, n2)
	if err != nil {
		return err
	}

	ndarray.Zero(s.Data)
	ndarray.CopyOffset2(s, r, k1-l1, k2-l2)

	ndarray.Zero(f.a)
	f.setCoefficient(0, sqrt32(s.At(k1, k2)))

	eemax := s.At(k1, k2) * epsilon
	var converged bool
	var lastDeltaSq float32
	var niter int
	for niter = 0; niter < maxiter && !converged; niter++ {
		if err := f.ApplyInverseTranspose2(s, t); err != nil {
			return err
		}
		if err := f.ApplyInverse2(t, u); err != nil {
			return err
		}
		u.Set(k1, k2, u.At(k1, k2)+1)
		u.Set(k1, k2, u.At(k1, k2)*0.5)
		for i2 := 0; i2 < k2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				u.Set(i1, i2, 0)
			}
		}
		for i1 := 0; i1 < k1; i1++ {
			u.Set(i1, k2, 0)
		}

		if err := f.Apply2(u, t); err != nil {
			return err
		}
		converged = true
		for j := 0; j < ls.m; j++ {
			j1 := k1 + ls.lag1[j]
			j2 := k2 + ls.lag2[j]
			if j1 >= 0 && j1 < n1 && j2 >= 0 && j2 < n2 {
				aj := t.At(j1, j2)
				if converged {
					e := f.a[j] - aj
					lastDeltaSq = e * e
					converged = lastDeltaSq <= eemax
				}
				f.setCoefficient(j, aj)
			}
		}
	}
	if !converged {
		return convergenceErr(niter, lastDeltaSq, eemax)
	}
	return nil
}

// FactorWilsonBurg3 factors this filter's coefficients, in place, from
// the given 3-D autocorrelation r. r must have odd lengths in all three
// dimensions. See FactorWilsonBurg1 for the convergence contract.
func (f *Filter) FactorWilsonBurg3(maxiter int, epsilon float32, r *ndarray.Array3, opts ...FactorOption) error {
	if r.N1%2 != 1 {
		return invalidArgf("r.N1 must be odd, got %d", r.N1)
	}
	if r.N2%2 != 1 {
		return invalidArgf("r.N2 must be odd, got %d", r.N2)
	}
	if r.N3%2 != 1 {
		return invalidArgf("r.N3 must be odd, got %d", r.N3)
	}
	if maxiter <= 0 {
		return invalidArgf("maxiter must be > 0, got %d", maxiter)
	}
	if epsilon <= 0 {
		return invalidArgf("epsilon must be > 0, got %g", epsilon)
	}
	cfg, err := resolveFactorConfig(opts)
	if err != nil {
		return err
	}

	ls := f.lags
	m1 := ls.max1 - ls.min1
	m2 := ls.max2 - ls.min2
	m3 := ls.max3 - ls.min3
	n1 := r.N1 + cfg.padding*m1
	n2 := r.N2 + cfg.padding*m2
	n3 := r.N3 + cfg.padding*m3
	l1 := (r.N1 - 1) / 2
	l2 := (r.N2 - 1) / 2
	l3 := (r.N3 - 1) / 2
	k1 := n1 - 1 - ls.max1
	k2 := n2 - 1 - ls.max2
	k3 := n3 - 1 - ls.max3

	s, t, u, err := cfg.buffers3(n1, n2, n3)
	if err != nil {
		return err
	}

	ndarray.Zero(s.Data)
	ndarray.CopyOffset3(s, r, k1-l1, k2-l2, k3-l3)

	ndarray.Zero(f.a)
	f.setCoefficient(0, sqrt32(s.At(k1, k2, k3)))

	eemax := s.At(k1, k2, k3) * epsilon
	var converged bool
	var lastDeltaSq float32
	var niter int
	for niter = 0; niter < maxiter && !converged; niter++ {
		if err := f.ApplyInverseTranspose3(s, t); err != nil {
			return err
		}
		if err := f.ApplyInverse3(t, u); err != nil {
			return err
		}
		u.Set(k1, k2, k3, u.At(k1, k2, k3)+1)
		u.Set(k1, k2, k3, u.At(k1, k2, k3)*0.5)
		for i3 := 0; i3 < k3; i3++ {
			for i2 := 0; i2 < n2; i2++ {
				for i1 := 0; i1 < n1; i1++ {
					u.Set(i1, i2, i3, 0)
				}
			}
		}
		for i2 := 0; i2 < k2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				u.Set(i1, i2, k3, 0)
			}
		}
		for i1 := 0; i1 < k1; i1++ {
			u.Set(i1, k2, k3, 0)
		}

		if err := f.Apply3(u, t); err != nil {
			return err
		}
		converged = true
		for j := 0; j < ls.m; j++ {
			j1 := k1 + ls.lag1[j]
			j2 := k2 + ls.lag2[j]
			j3 := k3 + ls.lag3[j]
			if j1 >= 0 && j1 < n1 && j2 >= 0 && j2 < n2 && j3 >= 0 && j3 < n3 {
				aj := t.At(j1, j2, j3)
				if converged {
					e := f.a[j] - aj
					lastDeltaSq = e * e
					converged = lastDeltaSq <= eemax
				}
				f.setCoefficient(j, aj)
			}
		}
	}
	if !converged {
		return convergenceErr(niter, lastDeltaSq, eemax)
	}
	return nil
}

func resolveFactorConfig(opts []FactorOption) (factorConfig, error) {
	cfg := defaultFactorConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return factorConfig{}, err
		}
	}
	return cfg, nil
}

func (cfg *factorConfig) buffers1(n1 int) (s, t, u *ndarray.Array1, err error) {
	if cfg.workspaceS != nil {
		if len(cfg.workspaceS) < n1 || len(cfg.workspaceT) < n1 || len(cfg.workspaceU) < n1 {
			return nil, nil, nil, invalidArgf("workspace buffers must have length >= %d", n1)
		}
		return &ndarray.Array1{Data: cfg.workspaceS[:n1], N1: n1},
			&ndarray.Array1{Data: cfg.workspaceT[:n1], N1: n1},
			&ndarray.Array1{Data: cfg.workspaceU[:n1], N1: n1}, nil
	}
	return ndarray.NewArray1(n1), ndarray.NewArray1(n1), ndarray.NewArray1(n1), nil
}

func (cfg *factorConfig) buffers2(n1, n2 int) (s, t, u *ndarray.Array2, err error) {
	n := n1 * n2
	if cfg.workspaceS != nil {
		if len(cfg.workspaceS) < n || len(cfg.workspaceT) < n || len(cfg.workspaceU) < n {
			return nil, nil, nil, invalidArgf("workspace buffers must have length >= %d", n)
		}
		return &ndarray.Array2{Data: cfg.workspaceS[:n], N1: n1, N2: n2},
			&ndarray.Array2{Data: cfg.workspaceT[:n], N1: n1, N2: n2},
			&ndarray.Array2{Data: cfg.workspaceU[:n], N1: n1, N2: n2}, nil
	}
	return ndarray.NewArray2(n1, n2), ndarray.NewArray2(n1, n2), ndarray.NewArray2(n1, n2), nil
}

func (cfg *factorConfig) buffers3(n1, n2, n3 int) (s, t, u *ndarray.Array3, err error) {
	n := n1 * n2 * n3
	if cfg.workspaceS != nil {
		if len(cfg.workspaceS) < n || len(cfg.workspaceT) < n || len(cfg.workspaceU) < n {
			return nil, nil, nil, invalidArgf("workspace buffers must have length >= %d", n)
		}
		return &ndarray.Array3{Data: cfg.workspaceS[:n], N1: n1, N2: n2, N3: n3},
			&ndarray.Array3{Data: cfg.workspaceT[:n], N1: n1, N2: n2, N3: n3},
			&ndarray.Array3{Data: cfg.workspaceU[:n], N1: n1, N2: n2, N3: n3}, nil
	}
	return ndarray.NewArray3(n1, n2, n3), ndarray.NewArray3(n1, n2, n3), ndarray.NewArray3(n1, n2, n3), nil
}
