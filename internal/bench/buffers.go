package bench

import (
	"unsafe"

	"github.com/headlands-org/gemvbench/internal/kernels"
)

// bufferAlign is the start alignment of every data buffer: one cache line,
// which also covers the 16-byte chunk loads and the 64-byte interleaved
// group loads the kernels issue.
const bufferAlign = 64

// alignedInt8 returns a zeroed int8 slice of length size whose first element
// sits on a bufferAlign boundary. The view points into its own backing
// array, so the allocation stays reachable for the slice's lifetime.
func alignedInt8(size int) []int8 {
	raw := make([]byte, size+bufferAlign)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % bufferAlign; rem != 0 {
		off = int(bufferAlign - rem)
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&raw[off])), size)
}

// alignedInt32 is alignedInt8 for 4-byte elements.
func alignedInt32(size int) []int32 {
	raw := make([]byte, 4*size+bufferAlign)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % bufferAlign; rem != 0 {
		off = int(bufferAlign - rem)
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&raw[off])), size)
}

func mulOverflows(a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	return a*b/a != b
}

// runBuffers owns every allocation for one run: the raw matrix, its three
// packed layouts, the input vector, and the output vectors. Acquired once
// before data generation, released once on every exit path.
type runBuffers struct {
	raw    []int8
	packed kernels.Packed
	x      []int8
	y      []int32
	yRef   []int32
}

// newRunBuffers sizes and allocates the arena for s, rejecting dimension
// combinations whose byte counts overflow.
func newRunBuffers(s kernels.Shape) (*runBuffers, error) {
	if s.KPadded < s.K || // rounding k up to the chunk size wrapped
		mulOverflows(s.N, s.K) || mulOverflows(s.N, s.KPadded) ||
		mulOverflows(4, s.KPadded) || mulOverflows(s.Blocks(), 4*s.KPadded) ||
		mulOverflows(s.N, 4) {
		return nil, errorf(KindAllocation, "buffers", "dimensions %dx%d overflow buffer sizing", s.N, s.K)
	}
	b := &runBuffers{
		raw: alignedInt8(s.N * s.K),
		packed: kernels.Packed{
			Shape:       s,
			RowPadded:   alignedInt8(s.RowPaddedSize()),
			Blocked:     alignedInt8(s.BlockedSize()),
			Interleaved: alignedInt8(s.BlockedSize()),
		},
		x:    alignedInt8(s.KPadded),
		y:    alignedInt32(s.N),
		yRef: alignedInt32(s.N),
	}
	return b, nil
}

// release drops every buffer reference so the arena can be collected as soon
// as the caller lets go of the result. Safe to call more than once.
func (b *runBuffers) release() {
	b.raw = nil
	b.packed = kernels.Packed{}
	b.x = nil
	b.y = nil
	b.yRef = nil
}
