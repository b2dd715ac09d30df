package helix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-helix/dsp/helix"
)

func TestNewFilter1_Impulse(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []float32{1, 0, 0}, f.Coefficients())
	require.Equal(t, float32(1), f.A0())
	require.Equal(t, float32(1), f.A0Inv())
}

func TestNewFilter1WithCoefficients(t *testing.T) {
	f, err := helix.NewFilter1WithCoefficients([]int{0, 1}, []float32{2, 0.5})
	require.NoError(t, err)
	require.Equal(t, float32(2), f.A0())
	require.Equal(t, float32(0.5), f.A0Inv())
}

func TestNewFilter1WithCoefficients_RejectsZeroA0(t *testing.T) {
	_, err := helix.NewFilter1WithCoefficients([]int{0, 1}, []float32{0, 0.5})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewFilter1WithCoefficients_RejectsLengthMismatch(t *testing.T) {
	_, err := helix.NewFilter1WithCoefficients([]int{0, 1, 2}, []float32{1, 0.5})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewFilter1_PropagatesLagSetError(t *testing.T) {
	_, err := helix.NewFilter1([]int{1, 2})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestCoefficients_ReturnsCopy(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	require.NoError(t, err)
	c := f.Coefficients()
	c[0] = 99
	require.Equal(t, float32(1), f.A0())
}

func TestNewFilter2_Impulse(t *testing.T) {
	f, err := helix.NewFilter2([]int{0, 1, 0}, []int{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, f.LagSet().Rank())
	require.Equal(t, []float32{1, 0, 0}, f.Coefficients())
}

func TestNewFilter3_Impulse(t *testing.T) {
	f, err := helix.NewFilter3([]int{0, 1}, []int{0, 0}, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 3, f.LagSet().Rank())
}
