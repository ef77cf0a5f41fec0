// SPDX-License-Identifier: MIT
// Package interp: sentinel error set.
// Every message is prefixed with "interp: ..."; constructors wrap them with
// the failing operation and index via fmt.Errorf("Op: ...: %w", ErrX), so
// callers match with errors.Is.

package interp

import "errors"

var (
	// ErrEmptyPoints is returned when an interpolant is requested from zero points.
	ErrEmptyPoints = errors.New("interp: at least one point is required")

	// ErrDuplicateNode is returned under WithDistinctNodes when two points share an x.
	ErrDuplicateNode = errors.New("interp: duplicate node x-coordinate")

	// ErrNaNInf is returned under WithFiniteValues when a coordinate is NaN or ±Inf.
	ErrNaNInf = errors.New("interp: NaN or Inf encountered")

	// ErrSingular is returned by FitMonomial when the Vandermonde system has a zero pivot.
	ErrSingular = errors.New("interp: singular Vandermonde system")
)
