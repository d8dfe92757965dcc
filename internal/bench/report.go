package bench

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteReport prints the human-readable result: one line echoing the
// resolved configuration, the timings, the derived rates, and the checksum.
func WriteReport(w io.Writer, res *Result) {
	fmt.Fprintf(w, "kernel=%s n=%d k=%d k_padded=%d iters=%d prefetch=%d\n",
		res.Kernel, res.N, res.K, res.KPadded, res.Iters, res.Prefetch)
	fmt.Fprintf(w, "elapsed=%.6f s per_iter=%.6f s\n",
		res.Elapsed.Seconds(), res.PerIter.Seconds())
	fmt.Fprintf(w, "approx_gbps=%.3f approx_gops=%.3f\n", res.GBps, res.GOps)
	if res.CPUTime > 0 {
		fmt.Fprintf(w, "cpu_time=%.6f s\n", res.CPUTime.Seconds())
	}
	fmt.Fprintf(w, "checksum=%d\n", res.Checksum)
}

// WriteReportJSON prints the result as indented JSON, one object per run.
func WriteReportJSON(w io.Writer, res *Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteCheck prints validation diagnostics: the retained sample mismatches,
// then the summary counts. A clean comparison prints only the summary.
func WriteCheck(w io.Writer, chk *CheckResult) {
	for _, m := range chk.Samples {
		fmt.Fprintf(w, "mismatch[%d]: got=%d ref=%d\n", m.Index, m.Got, m.Ref)
	}
	fmt.Fprintf(w, "check: mismatches=%d max_abs_diff=%d\n", chk.Mismatches, chk.MaxAbsDiff)
}
