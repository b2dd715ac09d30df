package ndarray

// Array1 is a contiguous 1-D float32 buffer.
type Array1 struct {
	Data []float32
	N1   int
}

// NewArray1 allocates a zeroed Array1 of length n1.
func NewArray1(n1 int) *Array1 {
	return &Array1{Data: make([]float32, n1), N1: n1}
}

// At returns the value at index i1.
func (a *Array1) At(i1 int) float32 { return a.Data[i1] }

// Set assigns the value at index i1.
func (a *Array1) Set(i1 int, v float32) { a.Data[i1] = v }

// Array2 is a contiguous 2-D float32 buffer stored row-major with i1
// varying fastest: index(i1,i2) = i2*N1 + i1.
type Array2 struct {
	Data   []float32
	N1, N2 int
}

// NewArray2 allocates a zeroed Array2 of shape (n1, n2).
func NewArray2(n1, n2 int) *Array2 {
	return &Array2{Data: make([]float32, n1*n2), N1: n1, N2: n2}
}

// At returns the value at index (i1, i2).
func (a *Array2) At(i1, i2 int) float32 { return a.Data[i2*a.N1+i1] }

// Set assigns the value at index (i1, i2).
func (a *Array2) Set(i1, i2 int, v float32) { a.Data[i2*a.N1+i1] = v }

// Row returns the contiguous slice backing row i2 (all i1 for fixed i2).
func (a *Array2) Row(i2 int) []float32 { return a.Data[i2*a.N1 : i2*a.N1+a.N1] }

// Array3 is a contiguous 3-D float32 buffer stored row-major with i1
// varying fastest, then i2, then i3:
// index(i1,i2,i3) = i3*N2*N1 + i2*N1 + i1.
type Array3 struct {
	Data       []float32
	N1, N2, N3 int
}

// NewArray3 allocates a zeroed Array3 of shape (n1, n2, n3).
func NewArray3(n1, n2, n3 int) *Array3 {
	return &Array3{Data: make([]float32, n1*n2*n3), N1: n1, N2: n2, N3: n3}
}

// At returns the value at index (i1, i2, i3).
func (a *Array3) At(i1, i2, i3 int) float32 { return a.Data[(i3*a.N2+i2)*a.N1+i1] }

// Set assigns the value at index (i1, i2, i3).
func (a *Array3) Set(i1, i2, i3 int, v float32) { a.Data[(i3*a.N2+i2)*a.N1+i1] = v }

// Row returns the contiguous slice backing row (i2, i3) (all i1 for fixed i2, i3).
func (a *Array3) Row(i2, i3 int) []float32 {
	off := (i3*a.N2 + i2) * a.N1
	return a.Data[off : off+a.N1]
}
