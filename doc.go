// Package fdr controls the False Discovery Rate of a family of hypothesis
// tests with the Benjamini-Hochberg step-up procedure.
//
// 🚀 What is FDR control?
//
//	Running many tests at level alpha each produces many false positives.
//	FDR control instead bounds the expected share of false discoveries among
//	all rejected null hypotheses. It is widely used in:
//	  • Genomics (differential expression, GWAS)
//	  • A/B testing with many metrics
//	  • Neuroimaging voxel-wise tests
//	  • Any screen producing one p-value per candidate
//
// ✨ Key features:
//   - BH: Benjamini-Hochberg, valid for independent tests
//   - BHY: Benjamini-Hochberg-Yekutieli, valid under arbitrary dependence
//   - step-up semantics: every p-value at or below the cutoff is rejected
//   - decisions aligned to input order; the input slice is never mutated
//   - explicit errors instead of silent all-false or all-true answers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fdr"
//
//	reject, err := fdr.Correct(pvalues,
//	  fdr.WithAlpha(0.05),     // target FDR
//	  fdr.WithDependent(true), // BHY
//	)
//	if errors.Is(err, fdr.ErrNoSignificantResult) {
//	  // nothing survived the correction
//	}
//
//	// cutoff, rank and thresholds as well
//	res, err := fdr.Run(pvalues)
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n)
//
// All functions are pure and safe for concurrent use.
package fdr
