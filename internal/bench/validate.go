package bench

// maxCheckSamples caps how many mismatching elements are retained for the
// report; the counts always cover the full output.
const maxCheckSamples = 5

// CheckResult summarizes an element-wise comparison of the timed kernel's
// output against the scalar reference.
type CheckResult struct {
	Mismatches int        `json:"mismatches"`
	MaxAbsDiff int32      `json:"max_abs_diff"`
	Samples    []Mismatch `json:"samples,omitempty"`
}

// Mismatch records one differing output element.
type Mismatch struct {
	Index int   `json:"index"`
	Got   int32 `json:"got"`
	Ref   int32 `json:"ref"`
}

// compareOutputs scans both vectors in full, counting mismatches, tracking
// the largest absolute difference, and keeping the first few differing
// elements as samples.
func compareOutputs(got, ref []int32) *CheckResult {
	chk := &CheckResult{}
	for i := range got {
		diff := got[i] - ref[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > chk.MaxAbsDiff {
			chk.MaxAbsDiff = diff
		}
		if got[i] != ref[i] {
			chk.Mismatches++
			if len(chk.Samples) < maxCheckSamples {
				chk.Samples = append(chk.Samples, Mismatch{Index: i, Got: got[i], Ref: ref[i]})
			}
		}
	}
	return chk
}
