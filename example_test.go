// SPDX-License-Identifier: MIT

package fdr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fdr"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCorrect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five independent tests, one of them clearly significant.
//	  p = [0.001, 0.2, 0.3, 0.4, 0.5]
//
// Options: defaults (alpha = 0.05, BH).
//
// Rank thresholds are 0.01, 0.02, 0.03, 0.04, 0.05; only rank 1 passes.
func ExampleCorrect() {
	p := []float64{0.001, 0.2, 0.3, 0.4, 0.5}

	reject, err := fdr.Correct(p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(reject)
	// Output:
	// [true false false false false]
}

// ExampleCorrect_dependent shows BHY being stricter than BH on the same input.
func ExampleCorrect_dependent() {
	p := []float64{0.001, 0.01, 0.02, 0.03}

	bh, _ := fdr.Correct(p)
	bhy, _ := fdr.Correct(p, fdr.WithDependent(true))
	fmt.Println("BH: ", bh)
	fmt.Println("BHY:", bhy)
	// Output:
	// BH:  [true true true true]
	// BHY: [true true false false]
}

// ExampleRun reports the step-up cutoff alongside the decisions.
// Input order is preserved even though ranks are computed on sorted values.
func ExampleRun() {
	p := []float64{0.01, 0.04, 0.03, 0.005, 0.3}

	res, err := fdr.Run(p, fdr.WithAlpha(0.05))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cutoff=%.2f rank=%d rejected=%d\n", res.Cutoff, res.CutoffRank, res.Rejected)
	fmt.Println(res.Reject)
	// Output:
	// cutoff=0.04 rank=4 rejected=4
	// [true true true true false]
}

// ExampleCorrect_noSignificantResult shows the explicit empty-result error.
func ExampleCorrect_noSignificantResult() {
	_, err := fdr.Correct([]float64{0.9, 0.95, 0.99}, fdr.WithAlpha(0.01))
	fmt.Println(errors.Is(err, fdr.ErrNoSignificantResult))
	fmt.Println(err)
	// Output:
	// true
	// Correct: fdr: no significant result
}
