package helix_test

import (
	"testing"

	"github.com/cwbudde/algo-helix/dsp/helix"
	"github.com/cwbudde/algo-helix/internal/ndarray"
	"github.com/cwbudde/algo-helix/internal/testhelix"
)

func TestApplyInverse2_UndoesApply2(t *testing.T) {
	f, err := helix.NewFilter2WithCoefficients(
		[]int{0, 1, 0, -1},
		[]int{0, 0, 1, 1},
		[]float32{1.3, 0.2, 0.15, -0.05},
	)
	if err != nil {
		t.Fatalf("NewFilter2WithCoefficients: %v", err)
	}
	x := ndarray.NewArray2(6, 5)
	for i := range x.Data {
		x.Data[i] = float32(i%7) - 3
	}
	y := ndarray.NewArray2(6, 5)
	if err := f.Apply2(x, y); err != nil {
		t.Fatalf("Apply2: %v", err)
	}
	xr := ndarray.NewArray2(6, 5)
	if err := f.ApplyInverse2(y, xr); err != nil {
		t.Fatalf("ApplyInverse2: %v", err)
	}
	testhelix.RequireSliceNearlyEqual(t, xr.Data, x.Data, 1e-2)
}

func TestApplyInverse3_UndoesApply3(t *testing.T) {
	f, err := helix.NewFilter3WithCoefficients(
		[]int{0, 1, 0, 0},
		[]int{0, 0, 1, 0},
		[]int{0, 0, 0, 1},
		[]float32{1.5, 0.2, 0.1, 0.05},
	)
	if err != nil {
		t.Fatalf("NewFilter3WithCoefficients: %v", err)
	}
	x := ndarray.NewArray3(4, 3, 3)
	for i := range x.Data {
		x.Data[i] = float32(i%5) - 2
	}
	y := ndarray.NewArray3(4, 3, 3)
	if err := f.Apply3(x, y); err != nil {
		t.Fatalf("Apply3: %v", err)
	}
	xr := ndarray.NewArray3(4, 3, 3)
	if err := f.ApplyInverse3(y, xr); err != nil {
		t.Fatalf("ApplyInverse3: %v", err)
	}
	testhelix.RequireSliceNearlyEqual(t, xr.Data, x.Data, 1e-2)
}

func TestApplyInverse1_RejectsDimensionMismatch(t *testing.T) {
	f, err := helix.NewFilter1([]int{0, 1})
	if err != nil {
		t.Fatalf("NewFilter1: %v", err)
	}
	x := ndarray.NewArray1(4)
	y := ndarray.NewArray1(5)
	if err := f.ApplyInverse1(x, y); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestApply2_IgnoresLag3WhenPresentOnFilter3CalledAs2D(t *testing.T) {
	// Apply2 reads only lag1 and lag2, so on a rank-3 filter the lag
	// (1, 0, 1) acts as the 2-D lag (1, 0).
	f, err := helix.NewFilter3WithCoefficients([]int{0, 1}, []int{0, 0}, []int{0, 1}, []float32{1, 0.5})
	if err != nil {
		t.Fatalf("NewFilter3WithCoefficients: %v", err)
	}
	x := ndarray.NewArray2(4, 1)
	x.Set(0, 0, 1)
	y := ndarray.NewArray2(4, 1)
	if err := f.Apply2(x, y); err != nil {
		t.Fatalf("Apply2: %v", err)
	}
	if got := y.At(1, 0); got != 0.5 {
		t.Errorf("y(1,0) = %v, want 0.5", got)
	}
}
