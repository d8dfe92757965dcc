//go:build !amd64 && !arm64

package kernels

func detectDotProd() bool {
	return false
}

func capabilityName() string {
	return "none"
}
