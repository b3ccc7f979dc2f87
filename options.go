// SPDX-License-Identifier: MIT

// Package fdr: functional configuration for the step-up procedure.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, which resolves options and enforces invariants.
//
// Notes:
//   - Option constructors never panic: alpha and method come from callers'
//     data, so they are validated by gatherOptions and reported as
//     ErrInvalidParameter from the entry point.
//   - Later options override earlier ones (WithDependent vs WithMethod included).
package fdr

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAlpha is the target False Discovery Rate.
	DefaultAlpha = 0.05

	// DefaultMethod is BH, i.e. tests are assumed independent.
	DefaultMethod = MethodBH

	// DefaultStrictPValues keeps the permissive policy: p-values outside
	// [0,1] take part in sorting and comparison as ordinary reals.
	DefaultStrictPValues = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	alpha  float64 // DefaultAlpha; must lie in (0,1)
	method Method  // DefaultMethod
	strict bool    // DefaultStrictPValues
}

// Alpha returns the configured significance level.
func (o Options) Alpha() float64 { return o.alpha }

// Method returns the configured procedure.
func (o Options) Method() Method { return o.method }

// Strict reports whether p-values are range-checked.
func (o Options) Strict() bool { return o.strict }

// DefaultOptions returns the zero-configuration policy:
// alpha=0.05, BH, permissive p-values.
func DefaultOptions() Options {
	return Options{
		alpha:  DefaultAlpha,
		method: DefaultMethod,
		strict: DefaultStrictPValues,
	}
}

// ---------- Constructors (WithX) ----------

// WithAlpha sets the FDR level.
//
// Behavior highlights:
//   - No validation here; an alpha outside (0,1) or NaN makes the entry point
//     fail with ErrInvalidParameter. It is never coerced.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.alpha = alpha }
}

// WithDependent selects MethodBHY when dependent is true and MethodBH otherwise.
// It mirrors the boolean dependence flag of the classic interface.
// BHY divides every rank threshold by the Benjamini-Yekutieli constant
// c(n) = 1 + 1/2 + ... + 1/n, not by a per-rank weight 1/rank, so it is
// never less strict than BH.
func WithDependent(dependent bool) Option {
	return func(o *Options) {
		if dependent {
			o.method = MethodBHY
		} else {
			o.method = MethodBH
		}
	}
}

// WithMethod selects the procedure explicitly.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithStrictPValues rejects NaN, ±Inf and values outside [0,1] with
// ErrInvalidPValue instead of letting them participate as ordinary reals.
func WithStrictPValues() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies opts over DefaultOptions and validates the result.
//
// Errors:
//   - ErrInvalidParameter for an unknown method.
//   - ErrInvalidParameter for alpha outside (0,1), NaN included.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := ValidateMethod(o.method); err != nil {
		return Options{}, err
	}
	if err := ValidateAlpha(o.alpha); err != nil {
		return Options{}, err
	}

	return o, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
