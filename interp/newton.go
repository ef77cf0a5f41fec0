package interp

// Newton is the divided-difference form of the interpolating polynomial.
//
// dd[k] holds f[x₀,…,x_k], the k-th order divided difference over the
// first k+1 points in input order; len(dd) == len(points).
type Newton[T Float] struct {
	points []Point[T]
	dd     []T
}

// NewNewton builds the leading diagonal of the divided-difference table.
//
// Errors:
//   - ErrEmptyPoints   — len(points) == 0.
//   - ErrDuplicateNode — only with WithDistinctNodes.
//   - ErrNaNInf        — only with WithFiniteValues.
//
// Two points sharing an x divide by zero in the table; without
// WithDistinctNodes the resulting ±Inf/NaN is stored as is.
//
// Complexity: O(n²) time, O(n) memory.
func NewNewton[T Float](points []Point[T], opts ...Option) (*Newton[T], error) {
	o := gatherOptions(opts...)
	if err := validatePoints("NewNewton", points, o); err != nil {
		return nil, err
	}

	pts := clonePoints(points)
	return &Newton[T]{points: pts, dd: dividedDifferences(pts)}, nil
}

// dividedDifferences computes f[x₀..x_k] for k = 0..n-1 bottom-up in a
// rolling array.
//
// Before pass k, d[i] = f[x_{i-k+1}..x_i] for i ≥ k-1. Pass k rewrites, from
// the top down so d[i-1] is still of order k-1:
//
//	d[i] = (d[i] − d[i−1]) / (x_i − x_{i−k}) = f[x_{i−k}..x_i]
//
// i.e. f[a..b] = (f[a+1..b] − f[a..b−1]) / (x_b − x_a) with a = i−k, b = i.
// Entries below k are final after pass k-1, so d[k] = f[x₀..x_k].
func dividedDifferences[T Float](points []Point[T]) []T {
	n := len(points)
	d := make([]T, n)
	for i, p := range points {
		d[i] = p.Y
	}
	for k := 1; k < n; k++ {
		for i := n - 1; i >= k; i-- {
			d[i] = (d[i] - d[i-1]) / (points[i].X - points[i-k].X)
		}
	}
	return d
}

// Evaluate returns the interpolant at x.
//
//  1. If x equals a node x exactly, that node's y is returned (first match).
//  2. Otherwise Σ_{k≥1} dd[k]·∏_{m<k}(x−x_m), carrying the product
//     incrementally, plus dd[0] as the unmultiplied leading term.
//
// Complexity: O(n).
func (nw *Newton[T]) Evaluate(x T) T {
	for _, p := range nw.points {
		if p.X == x {
			return p.Y
		}
	}

	var (
		sum T
		p   T = 1
	)
	for k := 1; k < len(nw.dd); k++ {
		p *= x - nw.points[k-1].X
		sum += nw.dd[k] * p
	}
	return sum + nw.dd[0]
}

// EvaluateMany samples the interpolant at every x in xs.
func (nw *Newton[T]) EvaluateMany(xs []T) []Point[T] {
	return EvaluateMany[T](nw, xs)
}

// Nodes returns a copy of the sample points in input order.
func (nw *Newton[T]) Nodes() []Point[T] {
	return clonePoints(nw.points)
}

// DividedDifferences returns a copy of f[x₀], f[x₀,x₁], …, f[x₀..xₙ₋₁].
func (nw *Newton[T]) DividedDifferences() []T {
	out := make([]T, len(nw.dd))
	copy(out, nw.dd)
	return out
}
