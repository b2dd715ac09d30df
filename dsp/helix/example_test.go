package helix_test

import (
	"fmt"

	"github.com/cwbudde/algo-helix/dsp/helix"
	"github.com/cwbudde/algo-helix/internal/ndarray"
)

func ExampleFilter_Apply1() {
	f, err := helix.NewFilter1WithCoefficients([]int{0, 1, 2}, []float32{1, 0.5, 0.25})
	if err != nil {
		panic(err)
	}
	x := &ndarray.Array1{Data: []float32{1, 0, 0, 0, 0}, N1: 5}
	y := ndarray.NewArray1(5)
	if err := f.Apply1(x, y); err != nil {
		panic(err)
	}
	fmt.Println(y.Data)
	// Output:
	// [1 0.5 0.25 0 0]
}
