package helix

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel wrapped by every construction-time
// and call-time argument violation: bad lag geometry, mismatched array
// lengths, a zero lag-0 coefficient, an even-length autocorrelation, or a
// non-positive maxiter/epsilon.
var ErrInvalidArgument = errors.New("helix: invalid argument")

// ErrConvergence is the sentinel wrapped when FactorWilsonBurg exhausts
// its iteration budget without satisfying the convergence criterion. The
// filter's coefficients are left in their last-iteration state.
var ErrConvergence = errors.New("helix: wilson-burg iterations did not converge")

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// convergenceErr reports errSq, the squared change of the first
// coefficient that failed the convergence test in the last iteration.
func convergenceErr(niter int, errSq, eemax float32) error {
	return fmt.Errorf("%w: after %d iterations (first failing e^2 %g > %g)", ErrConvergence, niter, errSq, eemax)
}
