package helix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-helix/dsp/helix"
	"github.com/cwbudde/algo-helix/internal/ndarray"
)

func TestFactorWilsonBurg1_Converges(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	require.NoError(t, err)

	r := &ndarray.Array1{Data: []float32{-0.4, 1.0, -0.4}, N1: 3}
	err = f.FactorWilsonBurg1(50, 1e-4, r)
	require.NoError(t, err)

	require.NotZero(t, f.A0())
	for _, c := range f.Coefficients() {
		require.False(t, isNonFiniteFloat32(c))
	}
}

func TestFactorWilsonBurg1_NonConvergenceReturnsErrConvergence(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	require.NoError(t, err)

	r := &ndarray.Array1{Data: []float32{-0.4, 1.0, -0.4}, N1: 3}
	err = f.FactorWilsonBurg1(1, 1e-6, r)
	require.Error(t, err)
	require.ErrorIs(t, err, helix.ErrConvergence)
}

func TestFactorWilsonBurg1_RejectsEvenLengthAutocorrelation(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	require.NoError(t, err)

	r := &ndarray.Array1{Data: []float32{1, 2, 3, 4}, N1: 4}
	err = f.FactorWilsonBurg1(10, 1e-4, r)
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestFactorWilsonBurg1_RejectsNonPositiveMaxiter(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	require.NoError(t, err)

	r := &ndarray.Array1{Data: []float32{-0.4, 1.0, -0.4}, N1: 3}
	err = f.FactorWilsonBurg1(0, 1e-4, r)
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestFactorWilsonBurg1_WithPadding(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	require.NoError(t, err)

	r := &ndarray.Array1{Data: []float32{-0.4, 1.0, -0.4}, N1: 3}
	err = f.FactorWilsonBurg1(50, 1e-4, r, helix.WithPadding(10))
	require.NoError(t, err)
}

func TestFactorWilsonBurg2_Converges(t *testing.T) {
	f, err := helix.NewFilter2([]int{0, 1, 0}, []int{0, 0, 1})
	require.NoError(t, err)

	r := ndarray.NewArray2(3, 3)
	r.Set(1, 1, 1.0)
	r.Set(2, 1, -0.2)
	r.Set(0, 1, -0.2)
	r.Set(1, 2, -0.2)
	r.Set(1, 0, -0.2)

	err = f.FactorWilsonBurg2(50, 1e-3, r, helix.WithPadding(10))
	require.NoError(t, err)
	require.NotZero(t, f.A0())
}

func isNonFiniteFloat32(v float32) bool {
	return v != v || v > 3.4e38 || v < -3.4e38
}
