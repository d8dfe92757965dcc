//go:build arm64

package kernels

import "golang.org/x/sys/cpu"

// SDOT (the ASIMDDP feature) ships on ARMv8.2 and later; baseline NEON alone
// lacks the 8-bit dot product the chunked kernels model.
func detectDotProd() bool {
	return cpu.ARM64.HasASIMDDP
}

func capabilityName() string {
	if cpu.ARM64.HasASIMDDP {
		return "neon-dotprod"
	}
	return "none"
}
