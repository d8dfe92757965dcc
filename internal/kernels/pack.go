package kernels

// PackRowPadded copies the row-major n x k matrix w into dst with every row
// widened to KPadded columns. Every destination byte is written: either a
// source value or an explicit zero, so dst needs no prior clearing.
func PackRowPadded(dst, w []int8, s Shape) {
	if len(dst) < s.RowPaddedSize() {
		panic("PackRowPadded: dst too small")
	}
	if len(w) < s.N*s.K {
		panic("PackRowPadded: w too small")
	}
	for row := 0; row < s.N; row++ {
		d := dst[row*s.KPadded : (row+1)*s.KPadded]
		n := copy(d, w[row*s.K:(row+1)*s.K])
		for i := n; i < len(d); i++ {
			d[i] = 0
		}
	}
}

// PackBlocked4 lays w out in groups of four consecutive rows, each row
// padded to KPadded. Rows past n in the final group are all zero, so the
// four-row kernels never special-case the tail block.
func PackBlocked4(dst, w []int8, s Shape) {
	if len(dst) < s.BlockedSize() {
		panic("PackBlocked4: dst too small")
	}
	if len(w) < s.N*s.K {
		panic("PackBlocked4: w too small")
	}
	for b := 0; b < s.Blocks(); b++ {
		for r := 0; r < rowsPerBlock; r++ {
			row := b*rowsPerBlock + r
			d := dst[row*s.KPadded : (row+1)*s.KPadded]
			n := 0
			if row < s.N {
				n = copy(d, w[row*s.K:(row+1)*s.K])
			}
			for i := n; i < len(d); i++ {
				d[i] = 0
			}
		}
	}
}

// PackInterleaved4 stores each four-row block chunk-major: for chunk c, the
// 16 bytes of rows 0..3 sit back to back at offset c*64, so the interleaved
// kernel walks one block with purely sequential 64-byte reads. Padding rows
// and columns are zero.
func PackInterleaved4(dst, w []int8, s Shape) {
	if len(dst) < s.BlockedSize() {
		panic("PackInterleaved4: dst too small")
	}
	if len(w) < s.N*s.K {
		panic("PackInterleaved4: w too small")
	}
	for b := 0; b < s.Blocks(); b++ {
		base := dst[b*rowsPerBlock*s.KPadded : (b+1)*rowsPerBlock*s.KPadded]
		for c := 0; c < s.KPadded/chunkBytes; c++ {
			col := c * chunkBytes
			for r := 0; r < rowsPerBlock; r++ {
				d := base[c*groupBytes+r*chunkBytes : c*groupBytes+(r+1)*chunkBytes]
				row := b*rowsPerBlock + r
				n := 0
				if row < s.N && col < s.K {
					end := row*s.K + min(col+chunkBytes, s.K)
					n = copy(d, w[row*s.K+col:end])
				}
				for i := n; i < len(d); i++ {
					d[i] = 0
				}
			}
		}
	}
}

// Packed bundles the three physical layouts derived from one weight matrix.
// Buffers are caller-owned and sized per Shape; PackAll fills all three so
// any kernel can run and be cross-checked against the reference.
type Packed struct {
	Shape       Shape
	RowPadded   []int8
	Blocked     []int8
	Interleaved []int8
}

// PackAll populates every layout from the row-major matrix w.
func (p *Packed) PackAll(w []int8) {
	PackRowPadded(p.RowPadded, w, p.Shape)
	PackBlocked4(p.Blocked, w, p.Shape)
	PackInterleaved4(p.Interleaved, w, p.Shape)
}
