package kernels

import "os"

// NoSimdEnv, when set to any non-empty value, disables the dot-product
// capability at startup and with it every non-scalar variant. Useful for
// forcing the scalar path on hardware that would otherwise qualify.
const NoSimdEnv = "GEMVBENCH_NO_SIMD"

// hasDotProd records whether the CPU exposes the 8-bit dot-product feature
// the non-scalar kernels are tuned for. Probed once at init.
var hasDotProd bool

func init() {
	hasDotProd = detectDotProd()
	if os.Getenv(NoSimdEnv) != "" {
		hasDotProd = false
	}
}

// HasDotProd reports whether non-scalar variants may be constructed on this
// machine.
func HasDotProd() bool {
	return hasDotProd
}

// SetDotProdSupport overrides the detected capability. For testing.
func SetDotProdSupport(enabled bool) {
	hasDotProd = enabled
}

// CapabilityName names the active dot-product feature, or "none" when the
// capability is absent or disabled.
func CapabilityName() string {
	if !hasDotProd {
		return "none"
	}
	return capabilityName()
}
