package kernels

// GEMVScalar computes y[row] = sum(w[row][j] * x[j]) over the Row-Padded
// layout with a plain nested loop. It has no hardware requirement and serves
// as the reference the other variants are validated against.
func GEMVScalar(y []int32, w, x []int8, s Shape) {
	if len(y) < s.N {
		panic("GEMVScalar: y too small")
	}
	if len(w) < s.RowPaddedSize() {
		panic("GEMVScalar: w too small")
	}
	if len(x) < s.KPadded {
		panic("GEMVScalar: x too small")
	}
	for row := 0; row < s.N; row++ {
		wrow := w[row*s.KPadded : (row+1)*s.KPadded]
		var acc int32
		for j := 0; j < s.KPadded; j++ {
			acc += int32(wrow[j]) * int32(x[j])
		}
		y[row] = acc
	}
}
