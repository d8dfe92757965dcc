package kernels

// dotChunk multiplies one 16-byte chunk of a row against the matching input
// chunk and returns the widened sum. The four independent partial sums mirror
// the lane structure of a 4-lane int8 dot-product instruction; because the
// arithmetic is exact in int32, regrouping never changes the result.
func dotChunk(w, x []int8) int32 {
	_ = w[15]
	_ = x[15]
	s0 := int32(w[0])*int32(x[0]) + int32(w[1])*int32(x[1]) +
		int32(w[2])*int32(x[2]) + int32(w[3])*int32(x[3])
	s1 := int32(w[4])*int32(x[4]) + int32(w[5])*int32(x[5]) +
		int32(w[6])*int32(x[6]) + int32(w[7])*int32(x[7])
	s2 := int32(w[8])*int32(x[8]) + int32(w[9])*int32(x[9]) +
		int32(w[10])*int32(x[10]) + int32(w[11])*int32(x[11])
	s3 := int32(w[12])*int32(x[12]) + int32(w[13])*int32(x[13]) +
		int32(w[14])*int32(x[14]) + int32(w[15])*int32(x[15])
	return s0 + s1 + s2 + s3
}

// GEMVDotProd processes one Row-Padded row at a time in 16-byte chunks.
// prefetch is the distance in chunks to touch ahead of the current column;
// zero or negative disables it. The touch reads only hint the hardware
// prefetcher and never affect results.
func GEMVDotProd(y []int32, w, x []int8, s Shape, prefetch int) {
	if len(y) < s.N {
		panic("GEMVDotProd: y too small")
	}
	if len(w) < s.RowPaddedSize() {
		panic("GEMVDotProd: w too small")
	}
	if len(x) < s.KPadded {
		panic("GEMVDotProd: x too small")
	}
	for row := 0; row < s.N; row++ {
		wrow := w[row*s.KPadded : (row+1)*s.KPadded]
		var acc int32
		for j := 0; j < s.KPadded; j += chunkBytes {
			if pf := j + prefetch*chunkBytes; prefetch > 0 && pf < s.KPadded {
				_ = wrow[pf]
				_ = x[pf]
			}
			acc += dotChunk(wrow[j:j+chunkBytes], x[j:j+chunkBytes])
		}
		y[row] = acc
	}
}

// GEMVDotProd4 walks the Four-Row-Blocked layout, servicing four rows per
// pass so each input chunk is loaded once for four weight chunks. Padding
// rows in the final block compute to zero and are simply not stored.
func GEMVDotProd4(y []int32, w4, x []int8, s Shape, prefetch int) {
	if len(y) < s.N {
		panic("GEMVDotProd4: y too small")
	}
	if len(w4) < s.BlockedSize() {
		panic("GEMVDotProd4: w4 too small")
	}
	if len(x) < s.KPadded {
		panic("GEMVDotProd4: x too small")
	}
	for b := 0; b < s.Blocks(); b++ {
		base := b * rowsPerBlock * s.KPadded
		w0 := w4[base : base+s.KPadded]
		w1 := w4[base+s.KPadded : base+2*s.KPadded]
		w2 := w4[base+2*s.KPadded : base+3*s.KPadded]
		w3 := w4[base+3*s.KPadded : base+4*s.KPadded]
		var acc0, acc1, acc2, acc3 int32
		for j := 0; j < s.KPadded; j += chunkBytes {
			if pf := j + prefetch*chunkBytes; prefetch > 0 && pf < s.KPadded {
				_ = w0[pf]
				_ = w1[pf]
				_ = w2[pf]
				_ = w3[pf]
				_ = x[pf]
			}
			xc := x[j : j+chunkBytes]
			acc0 += dotChunk(w0[j:j+chunkBytes], xc)
			acc1 += dotChunk(w1[j:j+chunkBytes], xc)
			acc2 += dotChunk(w2[j:j+chunkBytes], xc)
			acc3 += dotChunk(w3[j:j+chunkBytes], xc)
		}
		row := b * rowsPerBlock
		if row < s.N {
			y[row] = acc0
		}
		if row+1 < s.N {
			y[row+1] = acc1
		}
		if row+2 < s.N {
			y[row+2] = acc2
		}
		if row+3 < s.N {
			y[row+3] = acc3
		}
	}
}

// GEMVDotProd4Interleaved consumes the Four-Row-Interleaved layout: within a
// block the weight bytes for chunk c of all four rows are adjacent, so the
// inner loop advances through the block with strictly sequential 64-byte
// reads instead of four strided row streams.
func GEMVDotProd4Interleaved(y []int32, w4i, x []int8, s Shape, prefetch int) {
	if len(y) < s.N {
		panic("GEMVDotProd4Interleaved: y too small")
	}
	if len(w4i) < s.BlockedSize() {
		panic("GEMVDotProd4Interleaved: w4i too small")
	}
	if len(x) < s.KPadded {
		panic("GEMVDotProd4Interleaved: x too small")
	}
	for b := 0; b < s.Blocks(); b++ {
		base := w4i[b*rowsPerBlock*s.KPadded : (b+1)*rowsPerBlock*s.KPadded]
		var acc0, acc1, acc2, acc3 int32
		for j := 0; j < s.KPadded; j += chunkBytes {
			if pf := j + prefetch*chunkBytes; prefetch > 0 && pf < s.KPadded {
				_ = base[pf*rowsPerBlock]
				_ = x[pf]
			}
			g := base[j*rowsPerBlock : j*rowsPerBlock+groupBytes]
			xc := x[j : j+chunkBytes]
			acc0 += dotChunk(g[0:chunkBytes], xc)
			acc1 += dotChunk(g[chunkBytes:2*chunkBytes], xc)
			acc2 += dotChunk(g[2*chunkBytes:3*chunkBytes], xc)
			acc3 += dotChunk(g[3*chunkBytes:4*chunkBytes], xc)
		}
		row := b * rowsPerBlock
		if row < s.N {
			y[row] = acc0
		}
		if row+1 < s.N {
			y[row+1] = acc1
		}
		if row+2 < s.N {
			y[row+2] = acc2
		}
		if row+3 < s.N {
			y[row+3] = acc3
		}
	}
}
