// Command gemvbench benchmarks quantized int8 matrix-vector multiply
// kernels: one scalar reference and three chunked variants over packed
// weight layouts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/headlands-org/gemvbench/pkg/gemvbench"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gemvbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		n        = fs.Int("n", 1024, "Number of output rows")
		k        = fs.Int("k", 1024, "Number of input columns")
		iters    = fs.Int("iters", 64, "Timed loop iterations")
		kernel   = fs.String("kernel", "dotprod4", "Kernel variant: scalar, dotprod, dotprod4, or dotprod4i")
		prefetch = fs.Int("prefetch", 2, "Prefetch distance in 16-byte chunks (0 disables)")
		check    = fs.Bool("check", false, "Validate the timed kernel against the scalar reference")
		weights  = fs.String("weights", "", "Load raw int8 weights from this file instead of generating them")
		seedW    = fs.Uint64("seed-w", gemvbench.DefaultWeightSeed, "Weight matrix generator seed")
		seedX    = fs.Uint64("seed-x", gemvbench.DefaultVectorSeed, "Input vector generator seed")
		jsonOut  = fs.Bool("json", false, "Emit the report as JSON")
		verbose  = fs.Bool("v", false, "Log run phases to stderr")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(stderr, "Benchmark quantized int8 GEMV kernels.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample commands:\n")
		fmt.Fprintf(stderr, "  # Four-row blocked kernel on the default 1024x1024 matrix\n")
		fmt.Fprintf(stderr, "  %s -kernel dotprod4\n\n", fs.Name())
		fmt.Fprintf(stderr, "  # Validate the interleaved kernel on an unpadded shape\n")
		fmt.Fprintf(stderr, "  %s -n 1000 -k 500 -kernel dotprod4i -check\n\n", fs.Name())
		fmt.Fprintf(stderr, "  # Scalar baseline over weights loaded from disk\n")
		fmt.Fprintf(stderr, "  %s -kernel scalar -weights weights.bin -n 256 -k 4096\n", fs.Name())
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// The FlagSet has already printed the error and usage.
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n\n", fs.Arg(0))
		fs.Usage()
		return 1
	}

	variant, err := gemvbench.ParseKernel(*kernel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return 1
	}

	res, err := gemvbench.Run(
		gemvbench.WithDims(*n, *k),
		gemvbench.WithIterations(*iters),
		gemvbench.WithKernel(variant),
		gemvbench.WithPrefetch(*prefetch),
		gemvbench.WithCheck(*check),
		gemvbench.WithWeightsFile(*weights),
		gemvbench.WithSeeds(*seedW, *seedX),
		gemvbench.WithVerbose(*verbose),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if gemvbench.IsArgumentError(err) {
			fmt.Fprintln(stderr)
			fs.Usage()
		}
		return 1
	}

	// Validation diagnostics go to stderr; mismatches do not change the
	// exit code.
	if res.Check != nil {
		gemvbench.WriteCheck(stderr, res.Check)
	}

	if *jsonOut {
		if err := gemvbench.WriteReportJSON(stdout, res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		gemvbench.WriteReport(stdout, res)
	}
	return 0
}
