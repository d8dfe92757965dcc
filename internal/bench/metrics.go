package bench

import (
	"time"

	"github.com/headlands-org/gemvbench/internal/kernels"
)

// bytesPerIter is the traffic model for one kernel invocation: the packed
// layout the variant actually streams, one padded input vector, and n int32
// outputs. Only the selected layout counts, not all three.
func bytesPerIter(v kernels.Variant, s kernels.Shape) int64 {
	return int64(v.LayoutBytes(s)) + int64(s.KPadded) + 4*int64(s.N)
}

// opsPerIter counts multiplies and adds over the padded width: 2*n*KPadded.
// Padding columns are included; they cost the same instructions as data.
func opsPerIter(s kernels.Shape) int64 {
	return 2 * int64(s.N) * int64(s.KPadded)
}

// rates derives approximate GB/s and GOPS from the iteration totals. A
// non-positive elapsed time yields zeros rather than infinities.
func rates(v kernels.Variant, s kernels.Shape, iters int, elapsed time.Duration) (gbps, gops float64) {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0, 0
	}
	gbps = float64(bytesPerIter(v, s)) * float64(iters) / (secs * 1e9)
	gops = float64(opsPerIter(s)) * float64(iters) / (secs * 1e9)
	return gbps, gops
}
