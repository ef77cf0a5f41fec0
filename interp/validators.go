// Package interp - input validation shared by the constructors.
//
// Deterministic, side-effect free; only sentinel errors from errors.go.
package interp

import (
	"fmt"
	"math"
)

// validatePoints checks the point set against the resolved options.
// The empty check is unconditional; the others run only when enabled.
//
// Complexity: O(n) time for the finite check, O(n) expected for distinctness.
func validatePoints[T Float](op string, points []Point[T], o Options) error {
	if len(points) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPoints)
	}

	if o.finiteValues {
		for i, p := range points {
			if !isFinite(p.X) || !isFinite(p.Y) {
				return fmt.Errorf("%s: point %d (%v, %v): %w", op, i, p.X, p.Y, ErrNaNInf)
			}
		}
	}

	if o.distinctNodes {
		seen := make(map[T]int, len(points))
		for i, p := range points {
			if j, ok := seen[p.X]; ok {
				return fmt.Errorf("%s: points %d and %d share x=%v: %w", op, j, i, p.X, ErrDuplicateNode)
			}
			seen[p.X] = i
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// clonePoints returns an owned copy of points.
func clonePoints[T Float](points []Point[T]) []Point[T] {
	out := make([]Point[T], len(points))
	copy(out, points)
	return out
}
