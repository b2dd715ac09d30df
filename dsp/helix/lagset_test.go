package helix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-helix/dsp/helix"
)

func TestNewLagSet1_Valid(t *testing.T) {
	ls, err := helix.NewLagSet1([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 4, ls.M())
	require.Equal(t, 1, ls.Rank())
	require.Equal(t, 0, ls.Min1())
	require.Equal(t, 3, ls.Max1())
}

func TestNewLagSet1_RejectsNonzeroFirstLag(t *testing.T) {
	_, err := helix.NewLagSet1([]int{1, 2, 3})
	require.Error(t, err)
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewLagSet1_RejectsNonPositiveLag(t *testing.T) {
	_, err := helix.NewLagSet1([]int{0, 1, 0})
	require.Error(t, err)
	require.True(t, errors.Is(err, helix.ErrInvalidArgument))
}

func TestNewLagSet1_RejectsEmpty(t *testing.T) {
	_, err := helix.NewLagSet1(nil)
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewLagSet2_Valid(t *testing.T) {
	// A classic helical geometry: same-row causal neighbor, plus one
	// lag on the row above.
	ls, err := helix.NewLagSet2([]int{0, 1, 0}, []int{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, ls.Rank())
	require.Equal(t, 1, ls.Max2())
}

func TestNewLagSet2_AllowsNegativeLag1WhenLag2Positive(t *testing.T) {
	_, err := helix.NewLagSet2([]int{0, -1}, []int{0, 1})
	require.NoError(t, err)
}

func TestNewLagSet2_RejectsZeroLag2WithNonPositiveLag1(t *testing.T) {
	_, err := helix.NewLagSet2([]int{0, 0}, []int{0, 0})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewLagSet2_RejectsNegativeLag2(t *testing.T) {
	_, err := helix.NewLagSet2([]int{0, 1}, []int{0, -1})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewLagSet2_RejectsMismatchedLengths(t *testing.T) {
	_, err := helix.NewLagSet2([]int{0, 1}, []int{0})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewLagSet3_Valid(t *testing.T) {
	ls, err := helix.NewLagSet3(
		[]int{0, 1, 0, -1},
		[]int{0, 0, 1, 0},
		[]int{0, 0, 0, 1},
	)
	require.NoError(t, err)
	require.Equal(t, 3, ls.Rank())
	require.Equal(t, 4, ls.M())
	require.Equal(t, 1, ls.Max3())
}

func TestNewLagSet3_RejectsZeroLag3AndLag2WithNonPositiveLag1(t *testing.T) {
	_, err := helix.NewLagSet3([]int{0, 0}, []int{0, 0}, []int{0, 0})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestNewLagSet3_RejectsNegativeLag3(t *testing.T) {
	_, err := helix.NewLagSet3([]int{0, 1}, []int{0, 0}, []int{0, -1})
	require.ErrorIs(t, err, helix.ErrInvalidArgument)
}

func TestImpulse(t *testing.T) {
	a := helix.Impulse(5)
	require.Equal(t, []float32{1, 0, 0, 0, 0}, a)
}
