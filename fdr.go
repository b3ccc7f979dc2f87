// SPDX-License-Identifier: MIT

package fdr

import (
	"math"
	"sort"
)

// Operation name constants for unified error wrapping.
const (
	opCorrect = "Correct"
	opRun     = "Run"
	opBH      = "BH"
	opBHY     = "BHY"
)

// Correct — Benjamini-Hochberg step-up FDR control.
//
// Description:
//
//	Given n p-values, decide which null hypotheses to reject so that the
//	expected proportion of false discoveries stays at or below alpha.
//	The default is BH (independent tests); WithDependent(true) or
//	WithMethod(MethodBHY) switches to the Benjamini-Hochberg-Yekutieli weighting,
//	which stays valid under arbitrary dependence.
//
// Algorithm Outline:
//  1. order = stable argsort of pvalues (ascending, NaN last).
//  2. c = 1 (BH) or the harmonic sum Σ_{j=1..n} 1/j (BHY).
//  3. For every rank i (no early exit): candidate iff
//     pvalues[order[i]] <= alpha*(i+1) / (c*n).
//  4. No candidate ⇒ ErrNoSignificantResult.
//  5. cutoff = p-value of the highest-ranked candidate.
//  6. reject[i] = pvalues[i] <= cutoff for every input index i.
//
// Inputs:
//   - pvalues: any non-empty slice; not mutated, need not be sorted.
//   - opts: WithAlpha (default 0.05), WithDependent / WithMethod, WithStrictPValues.
//
// Returns:
//   - []bool aligned to pvalues: true means "reject the null" (significant).
//
// Errors:
//   - ErrInvalidParameter — alpha outside (0,1), empty input, unknown method.
//   - ErrInvalidPValue    — strict mode only.
//   - ErrNoSignificantResult — no rank passes its threshold. No decision
//     slice is returned in that case.
//
// Complexity:
//
//	Time O(n log n) (sort), Memory O(n).
func Correct(pvalues []float64, opts ...Option) ([]bool, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fdrErrorf(opCorrect, err)
	}
	res, err := stepUp(pvalues, o)
	if err != nil {
		return nil, fdrErrorf(opCorrect, err)
	}

	return res.Reject, nil
}

// BH is Correct with dependent=false at the given alpha.
func BH(pvalues []float64, alpha float64) ([]bool, error) {
	o, err := gatherOptions(WithAlpha(alpha), WithMethod(MethodBH))
	if err != nil {
		return nil, fdrErrorf(opBH, err)
	}
	res, err := stepUp(pvalues, o)
	if err != nil {
		return nil, fdrErrorf(opBH, err)
	}

	return res.Reject, nil
}

// BHY is Correct with dependent=true at the given alpha.
func BHY(pvalues []float64, alpha float64) ([]bool, error) {
	o, err := gatherOptions(WithAlpha(alpha), WithMethod(MethodBHY))
	if err != nil {
		return nil, fdrErrorf(opBHY, err)
	}
	res, err := stepUp(pvalues, o)
	if err != nil {
		return nil, fdrErrorf(opBHY, err)
	}

	return res.Reject, nil
}

// Run performs the same procedure as Correct and also reports the cutoff,
// its rank, the per-rank thresholds and the rank order.
// On error the returned Result is the zero value.
func Run(pvalues []float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, fdrErrorf(opRun, err)
	}
	res, err := stepUp(pvalues, o)
	if err != nil {
		return Result{}, fdrErrorf(opRun, err)
	}

	return res, nil
}

// stepUp runs the procedure on already-resolved options.
func stepUp(pvalues []float64, o Options) (Result, error) {
	// Stage 1 (Validate): input shape, then optional value policy.
	if err := ValidateNotEmpty(pvalues); err != nil {
		return Result{}, err
	}
	if o.strict {
		if err := ValidatePValues(pvalues); err != nil {
			return Result{}, err
		}
	}

	// Stage 2 (Prepare): rank order and per-rank thresholds.
	n := len(pvalues)
	order := rankOrder(pvalues)
	c := correctionFactor(n, o.method)
	thresholds := make([]float64, n)
	for i := 0; i < n; i++ {
		thresholds[i] = o.alpha * float64(i+1) / (c * float64(n))
	}

	// Stage 3 (Execute): every rank is evaluated; remember the highest passing one.
	top := -1
	for i, idx := range order {
		if pvalues[idx] <= thresholds[i] {
			top = i
		}
	}
	if top < 0 {
		return Result{}, ErrNoSignificantResult
	}

	// Stage 4 (Finalize): everything at or below the cutoff is rejected.
	cutoff := pvalues[order[top]]
	reject := make([]bool, n)
	rejected := 0
	for i, p := range pvalues {
		if p <= cutoff {
			reject[i] = true
			rejected++
		}
	}

	return Result{
		Reject:     reject,
		Cutoff:     cutoff,
		CutoffRank: top + 1,
		Rejected:   rejected,
		Thresholds: thresholds,
		Order:      order,
	}, nil
}

// rankOrder returns input indices sorted by ascending p-value.
// Ties keep input order; NaN sorts after every number.
func rankOrder(pvalues []float64) []int {
	order := make([]int, len(pvalues))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := pvalues[order[a]], pvalues[order[b]]
		if math.IsNaN(pa) {
			return false
		}
		if math.IsNaN(pb) {
			return true
		}

		return pa < pb
	})

	return order
}

// correctionFactor is the Benjamini-Yekutieli constant c(n) = Σ_{j=1..n} 1/j
// for MethodBHY and 1 for MethodBH. Summed in ascending j for determinism.
func correctionFactor(n int, m Method) float64 {
	if m != MethodBHY {
		return 1.0
	}
	c := 0.0
	for j := 1; j <= n; j++ {
		c += 1.0 / float64(j)
	}

	return c
}
