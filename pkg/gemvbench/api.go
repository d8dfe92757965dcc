// Package gemvbench exposes the benchmark harness programmatically:
// assemble a configuration from options, execute it, and inspect or print
// the result.
package gemvbench

import (
	"io"

	"github.com/headlands-org/gemvbench/internal/bench"
	"github.com/headlands-org/gemvbench/internal/kernels"
)

// Variant identifies one GEMV kernel strategy.
type Variant = kernels.Variant

const (
	// KernelScalar is the nested-loop reference; it runs on any CPU.
	KernelScalar = kernels.Scalar
	// KernelDotProd processes one row at a time in 16-byte chunks.
	KernelDotProd = kernels.DotProd
	// KernelDotProd4 services four rows per pass over the input vector.
	KernelDotProd4 = kernels.DotProd4
	// KernelDotProd4Interleaved streams the interleaved blocked layout.
	KernelDotProd4Interleaved = kernels.DotProd4Interleaved
)

// Canonical generator seeds used when no explicit seeds are configured.
const (
	DefaultWeightSeed = bench.DefaultWeightSeed
	DefaultVectorSeed = bench.DefaultVectorSeed
)

// Config fixes every input to one run. Zero values are not meaningful;
// construct one through Run's options.
type Config = bench.Config

// Result captures one completed run.
type Result = bench.Result

// CheckResult summarizes validation against the scalar reference.
type CheckResult = bench.CheckResult

// Mismatch records one differing output element.
type Mismatch = bench.Mismatch

// ParseKernel maps a kernel name (scalar, dotprod, dotprod4, dotprod4i) to
// its Variant.
func ParseKernel(name string) (Variant, error) {
	return kernels.ParseVariant(name)
}

// HasDotProd reports whether this machine can run the non-scalar kernels.
func HasDotProd() bool {
	return kernels.HasDotProd()
}

// CapabilityName names the detected dot-product feature, or "none".
func CapabilityName() string {
	return kernels.CapabilityName()
}

// Option is a functional option for configuring a run.
type Option func(*Config)

// WithDims sets the matrix dimensions: n output rows by k input columns.
func WithDims(n, k int) Option {
	return func(c *Config) {
		c.N = n
		c.K = k
	}
}

// WithIterations sets the number of timed kernel invocations.
func WithIterations(iters int) Option {
	return func(c *Config) {
		c.Iters = iters
	}
}

// WithKernel selects the kernel strategy to time.
func WithKernel(v Variant) Option {
	return func(c *Config) {
		c.Kernel = v
	}
}

// WithPrefetch sets the software prefetch distance in 16-byte chunks; zero
// or negative disables prefetching.
func WithPrefetch(dist int) Option {
	return func(c *Config) {
		c.Prefetch = dist
	}
}

// WithCheck validates the timed kernel's output against the scalar
// reference and attaches the comparison to the result.
func WithCheck(check bool) Option {
	return func(c *Config) {
		c.Check = check
	}
}

// WithWeightsFile loads the weight matrix from a raw int8 file instead of
// generating it. The file must hold exactly n*k bytes.
func WithWeightsFile(path string) Option {
	return func(c *Config) {
		c.WeightsPath = path
	}
}

// WithSeeds overrides the generator seeds for the weight matrix and the
// input vector.
func WithSeeds(weightSeed, vectorSeed uint64) Option {
	return func(c *Config) {
		c.WeightSeed = weightSeed
		c.VectorSeed = vectorSeed
	}
}

// WithVerbose logs run phases to the standard logger.
func WithVerbose(v bool) Option {
	return func(c *Config) {
		c.Verbose = v
	}
}

// Run executes one benchmark built from the default configuration plus opts.
func Run(opts ...Option) (*Result, error) {
	cfg := bench.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return bench.Run(cfg)
}

// WriteReport prints the human-readable result lines.
func WriteReport(w io.Writer, res *Result) {
	bench.WriteReport(w, res)
}

// WriteReportJSON prints the result as indented JSON.
func WriteReportJSON(w io.Writer, res *Result) error {
	return bench.WriteReportJSON(w, res)
}

// WriteCheck prints validation diagnostics for a completed check.
func WriteCheck(w io.Writer, chk *CheckResult) {
	bench.WriteCheck(w, chk)
}

// Error classification helpers, for callers that branch on failure class.
var (
	IsArgumentError   = bench.IsArgument
	IsAllocationError = bench.IsAllocation
	IsWeightsError    = bench.IsWeightIO
	IsCapabilityError = bench.IsCapability
)
