// SPDX-License-Identifier: MIT
// Package: fdr
//
// Purpose:
//  - Single source of truth for the parameter checks run before the
//    step-up procedure starts.
//  - Return sentinel errors tagged with the validator name; callers wrap
//    once more with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.

package fdr

import "fmt"

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAlpha ensures 0 < alpha < 1.
//
// The comparison is written so that NaN fails it as well.
// Errors: ErrInvalidParameter.
// Complexity: O(1).
func ValidateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return validatorErrorf("ValidateAlpha", fmt.Errorf("%w: alpha=%v must lie in (0,1)", ErrInvalidParameter, alpha))
	}

	return nil
}

// ValidateMethod ensures m is MethodBH or MethodBHY.
// Errors: ErrInvalidParameter.
func ValidateMethod(m Method) error {
	switch m {
	case MethodBH, MethodBHY:
		return nil
	default:
		return validatorErrorf("ValidateMethod", fmt.Errorf("%w: unknown method %v", ErrInvalidParameter, m))
	}
}

// ValidateNotEmpty ensures at least one p-value was supplied.
// Errors: ErrInvalidParameter.
func ValidateNotEmpty(pvalues []float64) error {
	if len(pvalues) == 0 {
		return validatorErrorf("ValidateNotEmpty", fmt.Errorf("%w: empty p-value sequence", ErrInvalidParameter))
	}

	return nil
}

// ValidatePValues ensures every p-value is finite and lies in [0,1].
// Used only under WithStrictPValues; values are never clamped.
//
// Errors: ErrInvalidPValue (also matches ErrInvalidParameter), naming the
// first offending index.
// Complexity: O(n).
func ValidatePValues(pvalues []float64) error {
	for i, p := range pvalues {
		if isNonFinite(p) || p < 0 || p > 1 {
			return validatorErrorf("ValidatePValues", fmt.Errorf("%w: pvalues[%d]=%v", ErrInvalidPValue, i, p))
		}
	}

	return nil
}
