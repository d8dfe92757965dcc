package bench

import (
	"log"

	"github.com/headlands-org/gemvbench/internal/kernels"
)

// Canonical generator seeds. Every run with the same dimensions and seeds
// computes on identical data, regardless of kernel or machine.
const (
	DefaultWeightSeed uint64 = 0x1234
	DefaultVectorSeed uint64 = 0x9abc
)

// Config fixes every input to one run. Run copies it, so a Config may be
// reused or mutated freely between runs.
type Config struct {
	N     int
	K     int
	Iters int

	Kernel kernels.Variant

	// Prefetch is the software prefetch distance in 16-byte chunks; zero or
	// negative disables it. Purely a performance hint, never observable in
	// the outputs.
	Prefetch int

	// Check recomputes the final output with the scalar reference and
	// reports element mismatches.
	Check bool

	// WeightsPath, when non-empty, supplies the raw weight matrix from disk
	// instead of the generator.
	WeightsPath string

	// WeightSeed and VectorSeed feed the xorshift generator. Zero is
	// accepted but degenerate: it produces all-zero data.
	WeightSeed uint64
	VectorSeed uint64

	// Verbose logs run phases to the standard logger.
	Verbose bool
}

// DefaultConfig is the canonical benchmark setup: a 1024x1024 matrix, 64
// timed iterations of the four-row blocked kernel, prefetching two chunks
// ahead.
func DefaultConfig() Config {
	return Config{
		N:          1024,
		K:          1024,
		Iters:      64,
		Kernel:     kernels.DotProd4,
		Prefetch:   2,
		WeightSeed: DefaultWeightSeed,
		VectorSeed: DefaultVectorSeed,
	}
}

func (c *Config) validate() error {
	if c.N <= 0 {
		return errorf(KindArgument, "config", "n must be positive, got %d", c.N)
	}
	if c.K <= 0 {
		return errorf(KindArgument, "config", "k must be positive, got %d", c.K)
	}
	if c.Iters <= 0 {
		return errorf(KindArgument, "config", "iters must be positive, got %d", c.Iters)
	}
	return nil
}

func (c *Config) logf(format string, args ...any) {
	if c.Verbose {
		log.Printf(format, args...)
	}
}
