package bench

import (
	"errors"
	"time"

	"github.com/headlands-org/gemvbench/internal/kernels"
	"github.com/headlands-org/gemvbench/internal/weights"
	"github.com/headlands-org/gemvbench/internal/xorshift"
)

// Result captures one completed run: the resolved configuration echo, raw
// and derived timings, and the full output vector.
type Result struct {
	Kernel     string `json:"kernel"`
	N          int    `json:"n"`
	K          int    `json:"k"`
	KPadded    int    `json:"k_padded"`
	Iters      int    `json:"iters"`
	Prefetch   int    `json:"prefetch"`
	Capability string `json:"capability"`

	Elapsed time.Duration `json:"elapsed_ns"`
	PerIter time.Duration `json:"per_iter_ns"`
	CPUTime time.Duration `json:"cpu_time_ns"`

	GBps float64 `json:"approx_gbps"`
	GOps float64 `json:"approx_gops"`

	// Checksum is the first output element, a cheap fingerprint of the whole
	// computation that also defeats dead-code elimination of the timed loop.
	Checksum int32 `json:"checksum"`

	// Output is the final output vector.
	Output []int32 `json:"-"`

	// Check holds validation results when the run was configured with one.
	Check *CheckResult `json:"check,omitempty"`
}

// Run executes one benchmark configuration start to finish and returns its
// metrics. Fatal conditions return a *Error; check mismatches are reported
// in the Result, not as errors.
func Run(cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Resolve the kernel first so capability problems surface before any
	// buffer is sized.
	kern, err := kernels.New(cfg.Kernel, cfg.Prefetch)
	if err != nil {
		kind := KindArgument
		if errors.Is(err, kernels.ErrDotProdUnsupported) {
			kind = KindCapability
		}
		return nil, newError(kind, "kernel select", err)
	}

	cfg.logf("kernel %s (capability %s)", cfg.Kernel, kernels.CapabilityName())

	s := kernels.NewShape(cfg.N, cfg.K)
	bufs, err := newRunBuffers(s)
	if err != nil {
		return nil, err
	}
	defer bufs.release()

	if cfg.WeightsPath != "" {
		cfg.logf("loading weights from %s", cfg.WeightsPath)
		if err := weights.ReadFile(bufs.raw, cfg.WeightsPath); err != nil {
			return nil, newError(KindWeightIO, "load weights", err)
		}
	} else {
		cfg.logf("generating %dx%d weights (seed %#x)", cfg.N, cfg.K, cfg.WeightSeed)
		xorshift.Fill(bufs.raw, cfg.WeightSeed)
	}
	xorshift.Fill(bufs.x[:cfg.K], cfg.VectorSeed)

	cfg.logf("packing layouts (k_padded=%d)", s.KPadded)
	bufs.packed.PackAll(bufs.raw)

	// One scalar pass warms caches and TLB entries before timing starts;
	// its output is discarded.
	cfg.logf("scalar warmup")
	kernels.GEMVScalar(bufs.y, bufs.packed.RowPadded, bufs.x, s)

	if cfg.Check {
		cfg.logf("computing scalar reference")
		kernels.GEMVScalar(bufs.yRef, bufs.packed.RowPadded, bufs.x, s)
	}

	cfg.logf("running %s for %d iterations", cfg.Kernel, cfg.Iters)
	cpuStart := cpuTimeNow()
	start := time.Now()
	for i := 0; i < cfg.Iters; i++ {
		kern.Compute(bufs.y, &bufs.packed, bufs.x)
	}
	elapsed := time.Since(start)
	cpuUsed := cpuTimeNow() - cpuStart

	gbps, gops := rates(cfg.Kernel, s, cfg.Iters, elapsed)
	res := &Result{
		Kernel:     cfg.Kernel.String(),
		N:          s.N,
		K:          s.K,
		KPadded:    s.KPadded,
		Iters:      cfg.Iters,
		Prefetch:   cfg.Prefetch,
		Capability: kernels.CapabilityName(),
		Elapsed:    elapsed,
		PerIter:    elapsed / time.Duration(cfg.Iters),
		CPUTime:    cpuUsed,
		GBps:       gbps,
		GOps:       gops,
		Checksum:   bufs.y[0],
		Output:     append([]int32(nil), bufs.y...),
	}
	if cfg.Check {
		cfg.logf("validating against scalar reference")
		res.Check = compareOutputs(bufs.y, bufs.yRef)
	}
	return res, nil
}
