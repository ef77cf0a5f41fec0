package interp

// Lagrange is the barycentric form of the interpolating polynomial.
//
// One term per input point, in input order. Each weight is
//
//	wᵢ = ∏ (xᵢ − xⱼ)  over all j whose factor is non-zero,
//
// so the i = j factor drops out naturally and so does any factor against a
// duplicate node. The weights are computed once in NewLagrange.
type Lagrange[T Float] struct {
	terms []bterm[T]
}

// NewLagrange precomputes the barycentric weights for points.
//
// Errors:
//   - ErrEmptyPoints   — len(points) == 0.
//   - ErrDuplicateNode — only with WithDistinctNodes.
//   - ErrNaNInf        — only with WithFiniteValues.
//
// Complexity: O(n²) time, O(n) memory.
func NewLagrange[T Float](points []Point[T], opts ...Option) (*Lagrange[T], error) {
	o := gatherOptions(opts...)
	if err := validatePoints("NewLagrange", points, o); err != nil {
		return nil, err
	}

	terms := make([]bterm[T], len(points))
	for i, pi := range points {
		var w T = 1
		for _, pj := range points {
			// Zero factors are skipped, not rejected: this removes j == i and
			// silently removes every duplicate node as well.
			if f := pi.X - pj.X; f != 0 {
				w *= f
			}
		}
		terms[i] = bterm[T]{p: pi, w: w}
	}

	return &Lagrange[T]{terms: terms}, nil
}

// Evaluate returns the interpolant at x.
//
//  1. If x equals a node x exactly, that node's y is returned (first match).
//  2. Otherwise N/D with N = Σ yᵢ/((x−xᵢ)wᵢ) and D = Σ 1/((x−xᵢ)wᵢ).
//
// D == 0 is only reachable from degenerate input and yields a non-finite
// result; it is not guarded.
//
// Complexity: O(n).
func (l *Lagrange[T]) Evaluate(x T) T {
	for _, t := range l.terms {
		if t.p.X == x {
			return t.p.Y
		}
	}

	var num, den T
	for _, t := range l.terms {
		d := (x - t.p.X) * t.w
		num += t.p.Y / d
		den += 1 / d
	}
	return num / den
}

// EvaluateMany samples the interpolant at every x in xs.
func (l *Lagrange[T]) EvaluateMany(xs []T) []Point[T] {
	return EvaluateMany[T](l, xs)
}

// Nodes returns a copy of the sample points in input order.
func (l *Lagrange[T]) Nodes() []Point[T] {
	out := make([]Point[T], len(l.terms))
	for i, t := range l.terms {
		out[i] = t.p
	}
	return out
}

// Weights returns a copy of the barycentric weights, parallel to Nodes.
func (l *Lagrange[T]) Weights() []T {
	out := make([]T, len(l.terms))
	for i, t := range l.terms {
		out[i] = t.w
	}
	return out
}
