package kernels

import "math"

// chunkBytes is the kernel granule: every row is processed 16 int8 values
// at a time, and KPadded is always a multiple of it.
const chunkBytes = 16

// rowsPerBlock is the row grouping of the blocked layouts.
const rowsPerBlock = 4

// groupBytes is one interleaved chunk group: 16 bytes from each of the four
// rows of a block, stored back to back.
const groupBytes = rowsPerBlock * chunkBytes

// MaxSafeK is the largest padded width for which the int32 accumulator
// cannot overflow: floor(MaxInt32 / 127^2) worst-case products.
const MaxSafeK = math.MaxInt32 / (127 * 127)

// Shape fixes one problem size: n output rows by k input columns, with k
// rounded up to KPadded so every row splits into whole 16-byte chunks.
type Shape struct {
	N       int
	K       int
	KPadded int
}

// NewShape derives the padded shape for an n by k matrix.
func NewShape(n, k int) Shape {
	return Shape{N: n, K: k, KPadded: roundUp16(k)}
}

func roundUp16(v int) int {
	return (v + chunkBytes - 1) &^ (chunkBytes - 1)
}

// Blocks is the number of 4-row groups covering N, the last one possibly
// holding padding rows.
func (s Shape) Blocks() int {
	return (s.N + rowsPerBlock - 1) / rowsPerBlock
}

// RowPaddedSize is the element count of the Row-Padded layout.
func (s Shape) RowPaddedSize() int {
	return s.N * s.KPadded
}

// BlockedSize is the element count of the Four-Row-Blocked and
// Four-Row-Interleaved layouts, which always store whole blocks.
func (s Shape) BlockedSize() int {
	return s.Blocks() * rowsPerBlock * s.KPadded
}
