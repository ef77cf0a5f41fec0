package sample

import (
	"fmt"
	"math"

	"github.com/mirkomartn/pim-book/interp"
	"golang.org/x/exp/slices"
)

// maxDrawFactor bounds RandomNodes to n·maxDrawFactor draws.
const maxDrawFactor = 64

// maxRangeLen bounds the number of values Range will allocate.
const maxRangeLen = 1 << 24

// Range returns start, start+step, … for every value strictly below stop.
// Elements are start + i·step computed in float64 and rounded once to T, so
// no error accumulates across the range. start >= stop yields an empty slice.
// The result is strictly increasing: a step too small to advance in T
// (below the spacing of T near the bounds) is rejected.
//
// Errors: ErrBadStep (also a step that does not advance in T),
// ErrBadInterval (non-finite bounds), ErrTooLarge (more than maxRangeLen values).
func Range[T interp.Float](start, stop, step T) ([]T, error) {
	if !finite(step) || step <= 0 {
		return nil, fmt.Errorf("Range: step=%v: %w", step, ErrBadStep)
	}
	if !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("Range: [%v, %v): %w", start, stop, ErrBadInterval)
	}
	if start >= stop {
		return []T{}, nil
	}

	s0, s1, ds := float64(start), float64(stop), float64(step)
	count := math.Ceil((s1 - s0) / ds)
	if math.IsInf(count, 0) || count > maxRangeLen {
		return nil, fmt.Errorf("Range: [%v, %v) step %v: %w", start, stop, step, ErrTooLarge)
	}

	out := make([]T, 0, int(count))
	for i := 0; ; i++ {
		x := T(s0 + float64(i)*ds)
		if x >= stop {
			break
		}
		if i > 0 && x <= out[i-1] {
			return nil, fmt.Errorf("Range: step=%v does not advance past %v: %w", step, x, ErrBadStep)
		}
		out = append(out, x)
	}
	return out, nil
}

// Linspace returns n ≥ 2 evenly spaced values from lo to hi inclusive.
// The last element is hi exactly.
//
// Errors: ErrBadCount (n < 2), ErrBadInterval (non-finite or lo > hi).
func Linspace[T interp.Float](lo, hi T, n int) ([]T, error) {
	if n < 2 {
		return nil, fmt.Errorf("Linspace: n=%d: %w", n, ErrBadCount)
	}
	if err := checkInterval("Linspace", lo, hi); err != nil {
		return nil, err
	}

	out := make([]T, n)
	span := hi - lo
	for i := 0; i < n-1; i++ {
		out[i] = lo + span*T(i)/T(n-1)
	}
	out[n-1] = hi
	return out, nil
}

// RandomCoefficients draws n coefficients uniformly from [lo, hi).
//
// Errors: ErrBadCount (n < 0), ErrBadInterval.
func RandomCoefficients[T interp.Float](n int, lo, hi T, seed int64) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("RandomCoefficients: n=%d: %w", n, ErrBadCount)
	}
	if err := checkInterval("RandomCoefficients", lo, hi); err != nil {
		return nil, err
	}

	rng := rngFromSeed(seed)
	out := make([]T, n)
	for i := range out {
		out[i] = lo + T(rng.Float64())*(hi-lo)
	}
	return out, nil
}

// RandomNodes draws n pairwise-distinct values from [lo, hi) and returns them
// sorted ascending, ready to be used as interpolation nodes.
//
// Errors: ErrBadCount (n < 1), ErrBadInterval (also lo == hi),
// ErrTooFewDistinct when n·maxDrawFactor draws did not produce n values.
func RandomNodes[T interp.Float](n int, lo, hi T, seed int64) ([]T, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomNodes: n=%d: %w", n, ErrBadCount)
	}
	if err := checkInterval("RandomNodes", lo, hi); err != nil {
		return nil, err
	}
	if lo == hi {
		return nil, fmt.Errorf("RandomNodes: empty interval [%v, %v): %w", lo, hi, ErrBadInterval)
	}

	rng := rngFromSeed(seed)
	seen := make(map[T]struct{}, n)
	out := make([]T, 0, n)
	for draws := 0; len(out) < n && draws < n*maxDrawFactor; draws++ {
		x := lo + T(rng.Float64())*(hi-lo)
		if x >= hi {
			continue
		}
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	if len(out) < n {
		return nil, fmt.Errorf("RandomNodes: drew %d of %d in [%v, %v): %w", len(out), n, lo, hi, ErrTooFewDistinct)
	}

	slices.Sort(out)
	return out, nil
}

// checkInterval validates finite lo ≤ hi.
func checkInterval[T interp.Float](op string, lo, hi T) error {
	if !finite(lo) || !finite(hi) || lo > hi {
		return fmt.Errorf("%s: [%v, %v]: %w", op, lo, hi, ErrBadInterval)
	}
	return nil
}

func finite[T interp.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
