// SPDX-License-Identifier: MIT
// Package interp: functional configuration for interpolant construction.
//
// Defaults are permissive: no node validation,
// degenerate inputs yield degenerate (possibly non-finite) results.
// Each WithX setter enables exactly one construction-time check.
package interp

const (
	// DefaultDistinctNodes leaves duplicate node x-coordinates unchecked.
	DefaultDistinctNodes = false

	// DefaultFiniteValues leaves NaN/Inf coordinates unchecked.
	DefaultFiniteValues = false
)

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors resolve them via gatherOptions.
type Options struct {
	distinctNodes bool // DefaultDistinctNodes
	finiteValues  bool // DefaultFiniteValues
}

// WithDistinctNodes makes construction fail with ErrDuplicateNode when two
// input points share the same x-coordinate.
func WithDistinctNodes() Option {
	return func(o *Options) { o.distinctNodes = true }
}

// WithFiniteValues makes construction fail with ErrNaNInf when any
// coordinate is NaN or ±Inf.
func WithFiniteValues() Option {
	return func(o *Options) { o.finiteValues = true }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		distinctNodes: DefaultDistinctNodes,
		finiteValues:  DefaultFiniteValues,
	}
}

// gatherOptions applies opts on top of the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
