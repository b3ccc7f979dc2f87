// SPDX-License-Identifier: MIT
// Package fdr: sentinel error set.
// All entry points return these sentinels (possibly wrapped with the
// operation tag) and tests check them via errors.Is. Nothing in this package
// panics on user-supplied data.

package fdr

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fdr: ..." so it can be grepped in caller
// logs. Entry points wrap with fdrErrorf(op, ErrX); callers still match the
// sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// method -> alpha -> empty input -> strict p-value checks -> no significant result.

var (
	// ErrInvalidParameter is returned when alpha lies outside (0,1), the p-value
	// sequence is empty, or the method is unknown. Detected before any work.
	ErrInvalidParameter = errors.New("fdr: invalid parameter")

	// ErrNoSignificantResult is returned when no rank satisfies its own
	// step-up threshold, i.e. not a single null hypothesis can be rejected.
	ErrNoSignificantResult = errors.New("fdr: no significant result")

	// ErrInvalidPValue is returned only under WithStrictPValues when a p-value
	// is NaN, ±Inf or outside [0,1]. It also matches ErrInvalidParameter.
	ErrInvalidPValue = fmt.Errorf("%w: p-value outside [0,1]", ErrInvalidParameter)
)

// fdrErrorf tags err with the operation name, keeping it matchable by errors.Is.
func fdrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
