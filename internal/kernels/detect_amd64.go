//go:build amd64

package kernels

import "golang.org/x/sys/cpu"

// AVX2 carries the integer multiply-accumulate sequence (VPMADDUBSW +
// VPMADDWD) that stands in for a dedicated dot-product instruction on x86.
func detectDotProd() bool {
	return cpu.X86.HasAVX2
}

func capabilityName() string {
	if cpu.X86.HasAVX2 {
		return "avx2"
	}
	return "none"
}
