package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunScalarReport(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-kernel", "scalar", "-n", "4", "-k", "20", "-iters", "2")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	for _, want := range []string{
		"kernel=scalar n=4 k=20 k_padded=32 iters=2 prefetch=2",
		"elapsed=",
		"approx_gbps=",
		"checksum=",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunCheckClean(t *testing.T) {
	code, _, stderr := runCLI(t, "-kernel", "scalar", "-n", "4", "-k", "20", "-iters", "1", "-check")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr, "check: mismatches=0 max_abs_diff=0") {
		t.Errorf("stderr missing clean check summary:\n%s", stderr)
	}
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	if code != 0 {
		t.Fatalf("help exit code %d, want 0", code)
	}
	for _, want := range []string{"Usage:", "-kernel", "Example commands:"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("usage missing %q:\n%s", want, stderr)
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "-iters")
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr missing usage after flag error:\n%s", stderr)
	}
}

func TestRunUnknownKernel(t *testing.T) {
	code, _, stderr := runCLI(t, "-kernel", "turbo")
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "unknown kernel") || !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr missing kernel error and usage:\n%s", stderr)
	}
}

func TestRunInvalidDims(t *testing.T) {
	code, _, stderr := runCLI(t, "-kernel", "scalar", "-n", "0")
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "argument error") {
		t.Errorf("stderr missing argument error:\n%s", stderr)
	}
}

func TestRunUnexpectedPositional(t *testing.T) {
	code, _, stderr := runCLI(t, "extra")
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "unexpected argument") {
		t.Errorf("stderr missing positional error:\n%s", stderr)
	}
}

func TestRunWrongSizeWeightsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.bin")
	if err := os.WriteFile(path, make([]byte, 3), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runCLI(t,
		"-kernel", "scalar", "-n", "4", "-k", "16", "-weights", path)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "size mismatch") {
		t.Errorf("stderr missing size mismatch:\n%s", stderr)
	}
	if stdout != "" {
		t.Errorf("no report expected on fatal error, got:\n%s", stdout)
	}
}

func TestRunJSONReport(t *testing.T) {
	code, stdout, stderr := runCLI(t,
		"-kernel", "scalar", "-n", "2", "-k", "16", "-iters", "1", "-json")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if decoded["kernel"] != "scalar" {
		t.Errorf("kernel = %v, want scalar", decoded["kernel"])
	}
}

func TestRunSeedFlagsChangeChecksum(t *testing.T) {
	_, a, _ := runCLI(t, "-kernel", "scalar", "-n", "4", "-k", "16", "-iters", "1")
	_, b, _ := runCLI(t, "-kernel", "scalar", "-n", "4", "-k", "16", "-iters", "1",
		"-seed-w", "51966")
	lineOf := func(out string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "checksum=") {
				return line
			}
		}
		return ""
	}
	if lineOf(a) == "" || lineOf(a) == lineOf(b) {
		t.Errorf("checksum unchanged across seeds: %q vs %q", lineOf(a), lineOf(b))
	}
}
