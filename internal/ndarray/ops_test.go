package ndarray

import "testing"

func TestZeroAndFill(t *testing.T) {
	buf := []float32{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
	Fill(buf, 5)
	for i, v := range buf {
		if v != 5 {
			t.Fatalf("buf[%d] = %v, want 5", i, v)
		}
	}
}

func TestCopyOffset1(t *testing.T) {
	dst := NewArray1(6)
	CopyOffset1(dst, []float32{1, 2, 3}, 2)
	want := []float32{0, 0, 1, 2, 3, 0}
	for i := range want {
		if dst.Data[i] != want[i] {
			t.Fatalf("Data[%d] = %v, want %v", i, dst.Data[i], want[i])
		}
	}
}

func TestCopyOffset2(t *testing.T) {
	src := NewArray2(2, 2)
	src.Set(0, 0, 1)
	src.Set(1, 0, 2)
	src.Set(0, 1, 3)
	src.Set(1, 1, 4)

	dst := NewArray2(4, 4)
	CopyOffset2(dst, src, 1, 1)

	if dst.At(1, 1) != 1 || dst.At(2, 1) != 2 || dst.At(1, 2) != 3 || dst.At(2, 2) != 4 {
		t.Fatalf("unexpected dst after CopyOffset2: %#v", dst.Data)
	}
	if dst.At(0, 0) != 0 {
		t.Fatalf("expected untouched cell to remain zero")
	}
}

func TestCopyOffset3(t *testing.T) {
	src := NewArray3(2, 1, 2)
	src.Set(0, 0, 0, 1)
	src.Set(1, 0, 0, 2)
	src.Set(0, 0, 1, 3)
	src.Set(1, 0, 1, 4)

	dst := NewArray3(4, 3, 4)
	CopyOffset3(dst, src, 1, 1, 1)

	if dst.At(1, 1, 1) != 1 || dst.At(2, 1, 1) != 2 || dst.At(1, 1, 2) != 3 || dst.At(2, 1, 2) != 4 {
		t.Fatalf("unexpected dst after CopyOffset3: %#v", dst.Data)
	}
}

func TestMinMaxInt(t *testing.T) {
	x := []int{3, -1, 4, 1, 5, -9, 2}
	if got := MinInt(x); got != -9 {
		t.Fatalf("MinInt = %d, want -9", got)
	}
	if got := MaxInt(x); got != 5 {
		t.Fatalf("MaxInt = %d, want 5", got)
	}
}
