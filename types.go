// SPDX-License-Identifier: MIT

package fdr

import "fmt"

// Method selects the per-rank weighting of the step-up procedure.
//
//   - MethodBH  — Benjamini-Hochberg: thresholds alpha*k/n. Valid for independent
//     (or positively dependent) tests.
//   - MethodBHY — Benjamini-Hochberg-Yekutieli: every threshold is divided by
//     the harmonic sum c(n) = 1 + 1/2 + ... + 1/n. Valid under arbitrary
//     dependence; never rejects more than BH on the same input.
type Method int

const (
	// MethodBH is the Benjamini-Hochberg procedure (dependent=false).
	MethodBH Method = iota

	// MethodBHY is the Benjamini-Hochberg-Yekutieli procedure (dependent=true).
	MethodBHY
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodBH:
		return "BH"
	case MethodBHY:
		return "BHY"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Result is the detailed outcome of Run.
//
// Fields:
//   - Reject     — decision per input p-value, aligned to input order.
//   - Cutoff     — step-up cutoff; Reject[i] == (pvalues[i] <= Cutoff).
//   - CutoffRank — 1-based rank of the largest position passing its threshold.
//   - Rejected   — number of true entries in Reject.
//   - Thresholds — per-rank thresholds alpha*(i+1)/(c*n), rank order.
//   - Order      — input indices sorted by ascending p-value (stable).
//
// Thresholds grow with rank for both methods, so Rejected == CutoffRank.
type Result struct {
	Reject     []bool
	Cutoff     float64
	CutoffRank int
	Rejected   int
	Thresholds []float64
	Order      []int
}
