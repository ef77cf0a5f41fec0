package interp

import (
	"runtime"
	"sync"
)

// EvaluateMany samples e at every x in xs, pairing each abscissa with its
// value. Order is preserved and duplicate xs are kept.
// A nil or empty xs yields an empty, non-nil slice.
//
// Complexity: O(len(xs)) calls to e.Evaluate.
func EvaluateMany[T Float](e Evaluator[T], xs []T) []Point[T] {
	out := make([]Point[T], len(xs))
	for i, x := range xs {
		out[i] = Point[T]{X: x, Y: e.Evaluate(x)}
	}
	return out
}

// EvaluateManyParallel is EvaluateMany split into contiguous chunks over at
// most workers goroutines. workers <= 0 means runtime.GOMAXPROCS(0).
// The result is element-for-element identical to EvaluateMany because each
// query is evaluated independently against immutable state.
//
// e must be safe for concurrent Evaluate calls; every type in this package is.
func EvaluateManyParallel[T Float](e Evaluator[T], xs []T, workers int) []Point[T] {
	n := len(xs)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return EvaluateMany(e, xs)
	}

	out := make([]Point[T], n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = Point[T]{X: xs[i], Y: e.Evaluate(xs[i])}
			}
		}(lo, hi)
	}
	wg.Wait()

	return out
}
