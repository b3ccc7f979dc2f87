// SPDX-License-Identifier: MIT
// Package fdr_test contains test helpers
//
// Purpose:
//   • Deterministic p-value fixtures drawn from gonum distributions.
//   • Small set/ordering helpers shared by property tests.

package fdr_test

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// mixedPValues draws nNull p-values from U(0,1) (true nulls) and nAlt from
// Beta(0.3, 8) (alternatives concentrated near 0), then interleaves them.
// The same seed always yields the same slice.
func mixedPValues(seed uint64, nNull, nAlt int) []float64 {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	null := distuv.Uniform{Min: 0, Max: 1, Src: src}
	alt := distuv.Beta{Alpha: 0.3, Beta: 8, Src: src}

	out := make([]float64, 0, nNull+nAlt)
	for i := 0; i < nNull; i++ {
		out = append(out, null.Rand())
	}
	for i := 0; i < nAlt; i++ {
		out = append(out, alt.Rand())
	}
	shuffle := rand.New(src)
	shuffle.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// countTrue returns the number of true entries.
func countTrue(bs []bool) int {
	c := 0
	for _, b := range bs {
		if b {
			c++
		}
	}

	return c
}

// isSubset reports whether every true in a is also true in b.
func isSubset(a, b []bool) bool {
	for i := range a {
		if a[i] && !b[i] {
			return false
		}
	}

	return true
}

// sortedCopy returns an ascending copy of xs.
func sortedCopy(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)

	return out
}
